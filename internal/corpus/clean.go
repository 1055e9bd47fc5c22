package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// The raw frequency export prefixes every story name with the
// collection title, sometimes without the trailing space.
var collectionPrefix = regexp.MustCompile(`Казки Лірника Сашка\. ?`)

// CleanStoryName strips the collection title from a story name.
func CleanStoryName(name string) string {
	return collectionPrefix.ReplaceAllString(name, "")
}

// CleanNames strips the collection title from every story identifier
// in a freshly parsed corpus: header columns, per-record counts and
// first_story references. Call it before the corpus is shared; the
// schema is re-derived from the cleaned names.
func (c *Corpus) CleanNames() {
	for i, name := range c.Header {
		if strings.HasPrefix(name, CountPrefix) {
			c.Header[i] = CountPrefix + CleanStoryName(strings.TrimPrefix(name, CountPrefix))
		}
	}
	for i := range c.Records {
		rec := &c.Records[i]
		rec.FirstStory = CleanStoryName(rec.FirstStory)
		counts := make(map[string]int, len(rec.Counts))
		for story, n := range rec.Counts {
			counts[CleanStoryName(story)] += n
		}
		rec.Counts = counts
	}
	c.deriveSchema()
}

// CleanCSV rewrites a summary CSV with cleaned story names in both the
// count_in_* headers and the first_story column. Row data other than
// first_story passes through untouched.
func CleanCSV(r io.Reader, w io.Writer) error {
	cr := csv.NewReader(r)
	cw := csv.NewWriter(w)

	header, err := cr.Read()
	if err == io.EOF {
		return &ParseError{Msg: "empty input, expected a header row"}
	}
	if err != nil {
		return parseErr(err)
	}

	firstStoryCol := -1
	cleaned := make([]string, len(header))
	for i, name := range header {
		if strings.HasPrefix(name, CountPrefix) {
			name = CountPrefix + CleanStoryName(strings.TrimPrefix(name, CountPrefix))
		}
		if name == "first_story" {
			firstStoryCol = i
		}
		cleaned[i] = name
	}
	if err := cw.Write(cleaned); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return parseErr(err)
		}
		if firstStoryCol >= 0 && firstStoryCol < len(row) {
			row[firstStoryCol] = CleanStoryName(row[firstStoryCol])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
