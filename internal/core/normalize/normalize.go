// Package normalize folds names into the comparison form the matcher uses:
// sanitized, NFKC composed, case and width folded, then reduced to latin
// letters, cyrillic letters and digits
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// chains are stateful, so each call borrows its own
// NFKC runs first so й and ё come back as single runes
var chains = sync.Pool{
	New: func() any { return transform.Chain(norm.NFKC, cases.Fold(), width.Fold) },
}

// Text returns the comparison form of s, e.g. "Т-Сети 24/7" becomes "тсети247"
// the result is idempotent under Text
func Text(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chains.Get().(transform.Transformer)
	folded, _, err := transform.String(tr, s)
	tr.Reset()
	chains.Put(tr)
	if err != nil {
		folded = strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if Kept(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Kept reports whether r survives Text unchanged
func Kept(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case unicode.Is(unicode.Cyrillic, r):
		return unicode.IsLetter(r) && !unicode.IsUpper(r)
	default:
		return false
	}
}
