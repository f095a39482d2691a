// Package langhint classifies the writing script of short search strings
package langhint

import (
	"unicode"
)

// Script is the predominant alphabet of a string
type Script string

const (
	// ScriptNone means the string has no letters
	ScriptNone Script = ""
	// ScriptLatin is latin letters only
	ScriptLatin Script = "latin"
	// ScriptCyrillic is cyrillic letters only
	ScriptCyrillic Script = "cyrillic"
	// ScriptMixed holds both latin and cyrillic letters
	ScriptMixed Script = "mixed"
	// ScriptOther is letters from neither alphabet
	ScriptOther Script = "other"
)

// Detect returns the script of s
// a string that mixes latin or cyrillic with other letters is classified by the two known alphabets only
func Detect(s string) Script {
	var latin, cyrillic, other int
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		switch {
		case unicode.In(r, unicode.Cyrillic):
			cyrillic++
		case unicode.In(r, unicode.Latin):
			latin++
		default:
			other++
		}
	}

	switch {
	case latin > 0 && cyrillic > 0:
		return ScriptMixed
	case cyrillic > 0:
		return ScriptCyrillic
	case latin > 0:
		return ScriptLatin
	case other > 0:
		return ScriptOther
	default:
		return ScriptNone
	}
}

// HasCyrillic reports whether s contains any cyrillic letter
func HasCyrillic(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Cyrillic) {
			return true
		}
	}
	return false
}
