package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError reports malformed CSV input. The record set is always
// empty when a ParseError is returned.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing summary CSV: line %d: %s", e.Line, e.Msg)
	}
	return "parsing summary CSV: " + e.Msg
}

// Parse reads a lemma summary table from r. The first line is the
// header; every subsequent non-empty line becomes one record keyed by
// header name. Numeric-looking cells are coerced to ints, anything
// else is kept as text or dropped to zero.
func Parse(r io.Reader) (*Corpus, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ParseError{Msg: "empty input, expected a header row"}
	}
	if err != nil {
		return nil, parseErr(err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range []string{"lemma", "total_count", "first_story"} {
		if _, ok := col[name]; !ok {
			return nil, &ParseError{Msg: fmt.Sprintf("missing required column %q", name)}
		}
	}

	stories := storyColumns(header)

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseErr(err)
		}
		if blankRow(row) {
			continue
		}

		rec := Record{
			Lemma:      cell(row, col["lemma"]),
			TotalCount: intCell(row, col["total_count"]),
			FirstStory: cell(row, col["first_story"]),
			Counts:     make(map[string]int, len(stories)),
		}
		for story, idx := range stories {
			if n := intCell(row, idx); n != 0 {
				rec.Counts[story] = n
			}
		}
		records = append(records, rec)
	}

	c := &Corpus{
		Records: records,
		Header:  header,
	}
	c.deriveSchema()
	return c, nil
}

// storyColumns maps story identifiers to their column index, in header
// order. The identifier is the column name with the count prefix
// stripped.
func storyColumns(header []string) map[string]int {
	cols := make(map[string]int)
	for i, name := range header {
		if strings.HasPrefix(name, CountPrefix) {
			cols[strings.TrimPrefix(name, CountPrefix)] = i
		}
	}
	return cols
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// intCell coerces a cell to an integer. Missing or non-numeric cells
// count as zero rather than failing the parse.
func intCell(row []string, i int) int {
	s := cell(row, i)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// Frequency exports sometimes write counts as "5.0".
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func parseErr(err error) *ParseError {
	if pe, ok := err.(*csv.ParseError); ok {
		return &ParseError{Line: pe.Line, Msg: pe.Err.Error()}
	}
	return &ParseError{Msg: err.Error()}
}
