package nlp

import (
	"strings"

	"review-cloud/internal/data/entity"
)

// Analyzer splits a sentence into tagged morphemes, in input order.
type Analyzer interface {
	Pos(sentence string) []entity.Token
}

// RuleAnalyzer is a small lexicon-and-suffix analyzer for cleaned Korean
// review text. It looks at one whitespace-separated word at a time.
type RuleAnalyzer struct {
	nouns      map[string]struct{}
	adjectives map[string]struct{}
	adverbs    map[string]struct{}
}

func NewRuleAnalyzer() *RuleAnalyzer {
	return &RuleAnalyzer{
		nouns:      toSet(defaultNouns),
		adjectives: toSet(defaultAdjectiveStems),
		adverbs:    toSet(defaultAdverbs),
	}
}

// AddNouns registers words that must always be tagged as nouns as-is.
func (a *RuleAnalyzer) AddNouns(words ...string) {
	for _, w := range words {
		a.nouns[w] = struct{}{}
	}
}

// AddAdjectiveStems registers dictionary stems such as 재밌 or 지루.
func (a *RuleAnalyzer) AddAdjectiveStems(stems ...string) {
	for _, s := range stems {
		a.adjectives[s] = struct{}{}
	}
}

func (a *RuleAnalyzer) Pos(sentence string) []entity.Token {
	var tokens []entity.Token
	for _, word := range strings.Fields(sentence) {
		tokens = append(tokens, a.analyzeWord(word)...)
	}
	return tokens
}

func (a *RuleAnalyzer) analyzeWord(word string) []entity.Token {
	switch {
	case isJamoOnly(word):
		return single(word, entity.TagKoreanParticle)
	case contains(a.nouns, word):
		return single(word, entity.TagNoun)
	case contains(a.adverbs, word):
		return single(word, entity.TagAdverb)
	case word == copulaPolite:
		return single(word, entity.TagAdjective)
	case a.isAdjective(word):
		return single(word, entity.TagAdjective)
	}

	if noun, ending, ok := splitSuffix(word, copulas); ok {
		tag := entity.TagJosa
		if ending == copulaPolite {
			tag = entity.TagAdjective
		}
		return []entity.Token{{Word: noun, Tag: entity.TagNoun}, {Word: ending, Tag: tag}}
	}

	if _, _, ok := splitEnding(word, verbEndings); ok {
		return single(word, entity.TagVerb)
	}

	if noun, josa, ok := splitSuffix(word, josas); ok {
		return []entity.Token{{Word: noun, Tag: entity.TagNoun}, {Word: josa, Tag: entity.TagJosa}}
	}

	return single(word, entity.TagNoun)
}

// isAdjective reports whether word is an inflected form of a known adjective stem.
func (a *RuleAnalyzer) isAdjective(word string) bool {
	if stem, _, ok := splitEnding(word, adjectiveEndings); ok && a.matchStem(stem) {
		return true
	}

	// adnominal forms carry the ending as a final consonant: 멋진, 지루한, 아름다운
	runes := []rune(word)
	if last := lastRune(runes); len(runes) > 1 {
		if f := finalConsonant(last); f == finalNieun || f == finalRieul {
			runes[len(runes)-1] = dropFinal(last)
			return a.matchStem(string(runes))
		}
	}
	return false
}

// matchStem strips tense and 하다 markers one step at a time, checking the
// lexicon after each step.
func (a *RuleAnalyzer) matchStem(stem string) bool {
	runes := []rune(stem)
	for len(runes) > 0 {
		if contains(a.adjectives, string(runes)) {
			return true
		}
		if len(runes) == 1 {
			return false
		}

		last := lastRune(runes)
		switch {
		case last == '았' || last == '었' || last == '였' || last == '겠':
			runes = runes[:len(runes)-1]
		case last == '하' || last == '해':
			runes = runes[:len(runes)-1]
		case finalConsonant(last) == finalSsang || finalConsonant(last) == finalBieup:
			runes[len(runes)-1] = dropFinal(last)
		default:
			return false
		}
	}
	return false
}

// suffix is an ending together with the final-consonant condition on the
// syllable before it.
type suffix struct {
	text  string
	final finalRule
}

type finalRule int

const (
	anyFinal finalRule = iota
	needsFinal
	needsOpen
)

func (s suffix) agrees(prev rune) bool {
	switch s.final {
	case needsFinal:
		return hasFinal(prev)
	case needsOpen:
		// 로 also follows ㄹ: 서울로
		return !hasFinal(prev) || (s.text == "로" && finalConsonant(prev) == finalRieul)
	}
	return true
}

// splitSuffix splits word into a non-empty stem and the first matching suffix.
// suffixes must be ordered longest first.
func splitSuffix(word string, suffixes []suffix) (string, string, bool) {
	for _, s := range suffixes {
		if !strings.HasSuffix(word, s.text) || len(word) == len(s.text) {
			continue
		}
		stem := strings.TrimSuffix(word, s.text)
		if !s.agrees(lastRune([]rune(stem))) {
			continue
		}
		return stem, s.text, true
	}
	return "", "", false
}

func splitEnding(word string, endings []string) (string, string, bool) {
	for _, e := range endings {
		if strings.HasSuffix(word, e) && len(word) > len(e) {
			return strings.TrimSuffix(word, e), e, true
		}
	}
	return "", "", false
}

func isJamoOnly(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !isCompatJamo(r) {
			return false
		}
	}
	return true
}

func single(word string, tag entity.Tag) []entity.Token {
	return []entity.Token{{Word: word, Tag: tag}}
}

func contains(set map[string]struct{}, word string) bool {
	_, ok := set[word]
	return ok
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
