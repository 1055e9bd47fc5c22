package corpus

import (
	"sort"
	"strings"
)

// storyOrderKey returns the sort key for a story identifier: the value
// of its leading digit run. Identifiers with no leading digits sort
// after all numbered ones.
func storyOrderKey(story string) int {
	i := 0
	for i < len(story) && story[i] >= '0' && story[i] <= '9' {
		i++
	}
	if i == 0 {
		return int(^uint(0) >> 1)
	}
	n := 0
	for _, c := range story[:i] {
		n = n*10 + int(c-'0')
	}
	return n
}

// deriveSchema computes the ordered story list and per-story stats.
// Runs once per load, never per query.
func (c *Corpus) deriveSchema() {
	var stories []string
	for _, name := range c.Header {
		if strings.HasPrefix(name, CountPrefix) {
			stories = append(stories, strings.TrimPrefix(name, CountPrefix))
		}
	}
	// Stable keeps encounter order for identifiers without a numeric
	// prefix.
	sort.SliceStable(stories, func(i, j int) bool {
		return storyOrderKey(stories[i]) < storyOrderKey(stories[j])
	})
	c.Stories = stories

	stats := make(map[string]StoryStat, len(stories))
	for _, s := range stories {
		stats[s] = StoryStat{Story: s}
	}
	for _, rec := range c.Records {
		for story, n := range rec.Counts {
			if st, ok := stats[story]; ok {
				st.TotalWords += n
				stats[story] = st
			}
		}
		if st, ok := stats[rec.FirstStory]; ok {
			st.NewWords++
			stats[rec.FirstStory] = st
		}
	}
	c.Stats = stats
}

// StorySort selects the ordering of the story list offered to the user.
// It never affects row queries.
type StorySort int

const (
	StorySortName StorySort = iota
	StorySortTotalWords
	StorySortNewWords
)

func (s StorySort) String() string {
	switch s {
	case StorySortTotalWords:
		return "total words"
	case StorySortNewWords:
		return "new words"
	default:
		return "name"
	}
}

// ParseStorySort maps a config value to a StorySort. Unknown values
// fall back to name order.
func ParseStorySort(s string) StorySort {
	switch s {
	case "words":
		return StorySortTotalWords
	case "new":
		return StorySortNewWords
	default:
		return StorySortName
	}
}

// SortedStories returns the story identifiers reordered for display.
// StorySortName keeps the derived (numeric-prefix) order; the word
// sorts are descending, busiest story first.
func (c *Corpus) SortedStories(by StorySort) []string {
	out := make([]string, len(c.Stories))
	copy(out, c.Stories)
	switch by {
	case StorySortTotalWords:
		sort.SliceStable(out, func(i, j int) bool {
			return c.Stats[out[i]].TotalWords > c.Stats[out[j]].TotalWords
		})
	case StorySortNewWords:
		sort.SliceStable(out, func(i, j int) bool {
			return c.Stats[out[i]].NewWords > c.Stats[out[j]].NewWords
		})
	}
	return out
}
