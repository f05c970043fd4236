package textmatch

import (
	"strings"
)

// NormalizeName canonicalizes a free-text ingredient name for matching:
// lower-case, trim, strip punctuation, collapse whitespace, and singularize
// each word. "Cherry Tomatoes!" and "cherry tomato" normalize identically.
func NormalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '-' || r == '_':
			b.WriteRune(' ')
		}
	}
	words := strings.Fields(b.String())
	for i, w := range words {
		words[i] = Singularize(w)
	}
	return strings.Join(words, " ")
}

// Singularize strips common English plural suffixes. It is deliberately
// crude; the reference dataset stores singular names so this only needs to
// cover grocery vocabulary (tomatoes, berries, eggs, ...).
func Singularize(word string) string {
	switch {
	case len(word) > 4 && strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case len(word) > 4 && strings.HasSuffix(word, "oes"):
		return word[:len(word)-2]
	case len(word) > 4 && (strings.HasSuffix(word, "ches") ||
		strings.HasSuffix(word, "shes") ||
		strings.HasSuffix(word, "sses") ||
		strings.HasSuffix(word, "xes")):
		return word[:len(word)-2]
	case len(word) > 3 && strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss"):
		return word[:len(word)-1]
	default:
		return word
	}
}

// Tokens returns the significant words of a name: normalized tokens longer
// than 2 characters. Short glue words ("of", "de") never drive a match.
func Tokens(name string) []string {
	var out []string
	for _, w := range strings.Fields(NormalizeName(name)) {
		if len(w) > 2 {
			out = append(out, w)
		}
	}
	return out
}

func tokensOverlap(a, b string) bool {
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}
