package entity

// Tag is a part-of-speech label produced by the morphological analyzer.
type Tag string

const (
	TagNoun           Tag = "Noun"
	TagAdjective      Tag = "Adjective"
	TagVerb           Tag = "Verb"
	TagAdverb         Tag = "Adverb"
	TagJosa           Tag = "Josa"
	TagKoreanParticle Tag = "KoreanParticle"
)

type Token struct {
	Word string
	Tag  Tag
}

// WordCount is one row of a frequency table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}
