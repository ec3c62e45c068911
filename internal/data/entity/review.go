package entity

// Review is one row of the review dataset. Empty CSV fields are nulls:
// Movie and Sentence become "", Score becomes nil.
type Review struct {
	Movie    string   `db:"movie" csv:"movie"`
	Sentence string   `db:"sentence" csv:"sentence"`
	Score    *float64 `db:"score" csv:"score"`
}

// HasSentence reports whether the sentence field was present in the source.
func (r Review) HasSentence() bool {
	return r.Sentence != ""
}
