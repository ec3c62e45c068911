package nlp

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// nonHangul matches everything outside compatibility jamo, precomposed
// syllables and ASCII space.
var nonHangul = regexp.MustCompile(`[^ㄱ-ㅎ가-힣 ]`)

// StripNonHangul recomposes s to NFC, then removes every rune that is not a
// Hangul letter or a space. Applying it twice equals applying it once.
func StripNonHangul(s string) string {
	return nonHangul.ReplaceAllString(norm.NFC.String(s), "")
}

const (
	syllableFirst = '\uAC00' // 가
	syllableLast  = '\uD7A3' // 힣

	finalNieun  = '\u11AB' // ㄴ
	finalRieul  = '\u11AF' // ㄹ
	finalBieup  = '\u11B8' // ㅂ
	finalSsang  = '\u11BB' // ㅆ
	finalsFirst = '\u11A8'
	finalsLast  = '\u11C2'
)

func isSyllable(r rune) bool {
	return r >= syllableFirst && r <= syllableLast
}

func isCompatJamo(r rune) bool {
	return r >= '\u3131' && r <= '\u3163' // ㄱ..ㅣ
}

// finalConsonant returns the trailing consonant (jongseong) of a syllable,
// or 0 when it has none.
func finalConsonant(r rune) rune {
	if !isSyllable(r) {
		return 0
	}
	parts := []rune(norm.NFD.String(string(r)))
	if len(parts) == 3 && parts[2] >= finalsFirst && parts[2] <= finalsLast {
		return parts[2]
	}
	return 0
}

func hasFinal(r rune) bool {
	return finalConsonant(r) != 0
}

// dropFinal removes the trailing consonant from a syllable: 했 -> 해.
func dropFinal(r rune) rune {
	if !hasFinal(r) {
		return r
	}
	parts := []rune(norm.NFD.String(string(r)))
	recomposed := []rune(norm.NFC.String(string(parts[:2])))
	if len(recomposed) != 1 {
		return r
	}
	return recomposed[0]
}

func lastRune(runes []rune) rune {
	if len(runes) == 0 {
		return 0
	}
	return runes[len(runes)-1]
}
