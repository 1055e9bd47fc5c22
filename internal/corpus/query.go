package corpus

import (
	"sort"
	"strings"
)

// DefaultCap bounds how many rows a query returns. It exists purely to
// bound render cost and never affects the reported match count.
const DefaultCap = 1000

// SortField selects the row ordering of a query.
type SortField int

const (
	SortFrequency SortField = iota
	SortAlphabetical
)

func (f SortField) String() string {
	if f == SortAlphabetical {
		return "alphabetical"
	}
	return "frequency"
}

// Selection is the full set of user choices a query depends on. The UI
// owns the current Selection and re-runs the query on every change.
type Selection struct {
	Filter     string
	Story      string // "" means all stories
	FirstOnly  bool   // only meaningful when Story is set
	SortField  SortField
	Descending bool
	Limit      int // 0 means DefaultCap
}

// Result is the outcome of a query: the capped rows plus the pre-cap
// match count and the overall table size.
type Result struct {
	Rows    []Record
	Matched int
	Total   int
}

// Truncated reports whether the row cap cut off matches.
func (r Result) Truncated() bool {
	return r.Matched > len(r.Rows)
}

// Query filters, sorts, and caps the record set according to sel. It is
// a pure function: records are never mutated and equal sort keys keep
// the prior stage's order.
func Query(records []Record, sel Selection) Result {
	rows := make([]Record, 0, len(records))

	filter := strings.ToLower(sel.Filter)
	for _, rec := range records {
		if filter != "" && !strings.Contains(strings.ToLower(rec.Lemma), filter) {
			continue
		}
		if sel.Story != "" {
			if sel.FirstOnly {
				if rec.FirstStory != sel.Story {
					continue
				}
			} else if rec.CountIn(sel.Story) <= 0 {
				continue
			}
		}
		rows = append(rows, rec)
	}

	less := lessFunc(rows, sel)
	sort.SliceStable(rows, less)

	matched := len(rows)
	limit := sel.Limit
	if limit <= 0 {
		limit = DefaultCap
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}

	return Result{Rows: rows, Matched: matched, Total: len(records)}
}

// DisplayCount returns the count column value for a row under the
// current selection: the per-story count when a story is selected,
// otherwise the total across the corpus.
func DisplayCount(rec Record, sel Selection) int {
	if sel.Story != "" {
		return rec.CountIn(sel.Story)
	}
	return rec.TotalCount
}

func lessFunc(rows []Record, sel Selection) func(i, j int) bool {
	var less func(i, j int) bool
	switch {
	case sel.SortField == SortAlphabetical:
		less = func(i, j int) bool { return rows[i].Lemma < rows[j].Lemma }
	case sel.Story != "":
		less = func(i, j int) bool {
			return rows[i].CountIn(sel.Story) < rows[j].CountIn(sel.Story)
		}
	default:
		less = func(i, j int) bool { return rows[i].TotalCount < rows[j].TotalCount }
	}
	if sel.Descending {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	return less
}
