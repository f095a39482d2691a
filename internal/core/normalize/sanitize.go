package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sanitize drops control characters other than \n, \r and \t, and invalid UTF-8
// user input goes through it before it reaches a log line
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return r
		case r == utf8.RuneError || unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, s)
}
