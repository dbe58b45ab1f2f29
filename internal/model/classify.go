package model

import (
	"strings"

	"github.com/surgebase/porter2"
)

// minStemLength: words shorter than this are compared verbatim since
// stemming short words tends to collapse unrelated terms together.
const minStemLength = 3

// StemKeyword normalizes a LOM keyword/classification term so that two
// differently-inflected spellings of the same concept ("assessment" vs.
// "assessments") land on the same bucket when the projection layer
// deduplicates vendor taxonomy tags.
func StemKeyword(raw string) string {
	word := strings.ToLower(strings.TrimSpace(raw))
	if word == "" {
		return ""
	}
	if len(word) < minStemLength {
		return word
	}
	return porter2.Stem(word)
}
