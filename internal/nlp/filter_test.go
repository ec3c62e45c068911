package nlp

import (
	"testing"

	"review-cloud/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestSelectWords(t *testing.T) {
	tokens := []entity.Token{
		{Word: "영화", Tag: entity.TagNoun},
		{Word: "너무", Tag: entity.TagAdverb},
		{Word: "재밌어요", Tag: entity.TagAdjective},
		{Word: "봤다", Tag: entity.TagVerb},
		{Word: "배우", Tag: entity.TagNoun},
		{Word: "가", Tag: entity.TagJosa},
	}

	t.Run("no stopwords", func(t *testing.T) {
		got := SelectWords(tokens, nil, entity.TagNoun, entity.TagAdjective)
		assert.Equal(t, []string{"영화", "재밌어요", "배우"}, got)
	})

	t.Run("stopwords removed", func(t *testing.T) {
		stop := NewStopwordSet([]string{"영화", "너무"})
		got := SelectWords(tokens, stop, entity.TagNoun, entity.TagAdjective)
		assert.Equal(t, []string{"재밌어요", "배우"}, got)
		for _, w := range got {
			assert.False(t, stop.Contains(w))
		}
	})

	t.Run("no tags keeps nothing", func(t *testing.T) {
		assert.Empty(t, SelectWords(tokens, nil))
	})
}
