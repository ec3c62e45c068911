package nlp

import (
	"review-cloud/internal/data/entity"
)

type StopwordSet map[string]struct{}

func NewStopwordSet(words []string) StopwordSet {
	set := make(StopwordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func (s StopwordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// SelectWords keeps the words of tokens whose tag is in tags. Stopwords are
// dropped before the tag check; a nil set drops nothing.
func SelectWords(tokens []entity.Token, stopwords StopwordSet, tags ...entity.Tag) []string {
	var words []string
	for _, t := range tokens {
		if stopwords.Contains(t.Word) {
			continue
		}
		if hasTag(tags, t.Tag) {
			words = append(words, t.Word)
		}
	}
	return words
}

func hasTag(tags []entity.Tag, tag entity.Tag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
