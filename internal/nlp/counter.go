package nlp

import (
	"sort"

	"review-cloud/internal/data/entity"
)

// Counter counts words and remembers the order in which each word was first seen.
type Counter struct {
	index   map[string]int
	entries []entity.WordCount
}

func NewCounter() *Counter {
	return &Counter{index: make(map[string]int)}
}

func (c *Counter) Add(word string) {
	if i, ok := c.index[word]; ok {
		c.entries[i].Count++
		return
	}
	c.index[word] = len(c.entries)
	c.entries = append(c.entries, entity.WordCount{Word: word, Count: 1})
}

func (c *Counter) AddAll(words []string) {
	for _, w := range words {
		c.Add(w)
	}
}

func (c *Counter) Count(word string) int {
	if i, ok := c.index[word]; ok {
		return c.entries[i].Count
	}
	return 0
}

// Len is the number of distinct words.
func (c *Counter) Len() int {
	return len(c.entries)
}

// MostCommon returns up to n entries by descending count. Equal counts keep
// first-seen order. n <= 0 returns every entry.
func (c *Counter) MostCommon(n int) []entity.WordCount {
	ranked := make([]entity.WordCount, len(c.entries))
	copy(ranked, c.entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n > 0 && len(ranked) > n {
		return ranked[:n]
	}
	return ranked
}
