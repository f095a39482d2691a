// Package translit renders Russian cyrillic text in latin letters
// The rendering is one way and only used on the query side of matching
package translit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Alphabet names the script a text is rendered from
type Alphabet uint8

const (
	// Cyrillic renders russian cyrillic letters to latin
	Cyrillic Alphabet = iota
	// Latin input is already latin; text is returned as is
	Latin
)

// lower is the practical russian romanization the matcher agrees on
var lower = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "yo", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "yu", 'я': "ya",
}

// table holds both cases, built once and never written again
var table = build(lower)

func build(src map[rune]string) map[rune]string {
	out := make(map[rune]string, len(src)*2)
	for r, s := range src {
		out[r] = s
		out[unicode.ToUpper(r)] = capitalize(s)
	}
	return out
}

// capitalize upper-cases the first latin letter of s
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Transliterate renders text from the given alphabet into latin
// Unknown runes pass through unchanged, so the function is total
func Transliterate(text string, from Alphabet) string {
	switch from {
	case Cyrillic:
		return ToLatin(text)
	default:
		return text
	}
}

// ToLatin maps every cyrillic letter of the table to its latin rendering
// Case is preserved on the first letter of each rendering (Щ -> Shch)
func ToLatin(text string) string {
	if text == "" {
		return ""
	}
	// fast path: nothing to map
	if !hasMapped(text) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + len(text)/2)
	for _, r := range text {
		if s, ok := table[r]; ok {
			b.WriteString(s)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func hasMapped(text string) bool {
	for _, r := range text {
		if _, ok := table[r]; ok {
			return true
		}
	}
	return false
}

// Size reports how many runes (both cases) the table maps
func Size() int { return len(table) }

// Lookup returns the latin rendering of a single rune
func Lookup(r rune) (string, bool) {
	s, ok := table[r]
	return s, ok
}
