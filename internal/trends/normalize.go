package trends

import (
	"strings"
	"unicode"
)

// Filler words that carry no topical meaning. Two headlines about the
// same event should collapse to the same key whether or not one of
// them says "breaking" or "ताजा खबर".
var fillerWords = map[string]bool{
	"news":     true,
	"latest":   true,
	"breaking": true,
	"update":   true,
	"report":   true,
	"story":    true,
	"समाचार":   true,
	"ताजा":     true,
	"ताज़ा":    true,
	"खबर":      true,
	"अपडेट":    true,
	"रिपोर्ट":  true,
}

// NormalizeTitle reduces a headline to its comparison key: lowercase,
// punctuation stripped, filler words and tokens of two runes or fewer
// dropped. Works on mixed Hindi/English text.
func NormalizeTitle(title string) string {
	lower := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	kept := words[:0]
	for _, w := range words {
		if fillerWords[w] {
			continue
		}
		if len([]rune(w)) <= 2 {
			continue
		}
		kept = append(kept, w)
	}

	return strings.Join(kept, " ")
}
