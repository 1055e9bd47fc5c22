// Package corpus loads and queries lemma frequency tables for the
// "Казки Лірника Сашка" story corpus.
package corpus

// CountPrefix marks the per-story count columns in the summary CSV.
const CountPrefix = "count_in_"

// Record is one row of the vocabulary table: a lemma with its total
// occurrence count, the story it first appeared in, and its count in
// each story.
type Record struct {
	Lemma      string
	TotalCount int
	FirstStory string
	Counts     map[string]int
}

// CountIn returns the record's occurrence count in the given story.
// Unknown stories count as zero.
func (r Record) CountIn(story string) int {
	return r.Counts[story]
}

// StoryStat holds per-story aggregates derived from the full table.
type StoryStat struct {
	Story      string
	TotalWords int
	NewWords   int
}

// Corpus is a fully loaded lemma table. It is immutable after load;
// a fresh Load is the only way to refresh it.
type Corpus struct {
	Records []Record
	Header  []string
	Stories []string
	Stats   map[string]StoryStat
}

// Stat returns the aggregate stats for a story.
func (c *Corpus) Stat(story string) StoryStat {
	return c.Stats[story]
}

// DefaultStory returns the first story in derived order, or "" when the
// corpus has no per-story columns.
func (c *Corpus) DefaultStory() string {
	if len(c.Stories) == 0 {
		return ""
	}
	return c.Stories[0]
}
