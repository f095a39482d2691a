// Package match implements the search cascade shared by every entity kind
//
// A raw query is prepared once (decode, trim, transliterate, tokenize, expand
// slang) and then checked against each candidate name with three widening
// strategies: exact substring, normalized substring, token overlap
package match

import (
	"net/url"
	"strings"

	"netmatch/internal/core/langhint"
	"netmatch/internal/core/normalize"
	"netmatch/internal/core/slang"
	"netmatch/internal/core/translit"
)

// Query is the value-computed form of a raw search string
type Query struct {
	Raw      string
	Decoded  string
	Translit string
	Script   langhint.Script

	// DecodeFailed is set when Raw was not valid percent-encoding and was used literally
	DecodeFailed bool

	// Tokens holds the lowercase whitespace tokens of Decoded and Translit plus
	// their slang expansions, de-duplicated in first-seen order
	Tokens []string

	lowerDecoded  string
	lowerTranslit string
	normDecoded   string
	normTranslit  string
}

// Decode percent-decodes raw with '+' as space and trims surrounding whitespace
// Malformed escapes fall back to the raw string taken literally
func Decode(raw string) (string, bool) {
	s, err := url.QueryUnescape(raw)
	if err != nil {
		return strings.TrimSpace(raw), false
	}
	return strings.TrimSpace(s), true
}

// Prepare builds a Query from raw input
func Prepare(raw string) Query {
	decoded, ok := Decode(raw)
	tl := decoded
	if langhint.HasCyrillic(decoded) {
		tl = translit.ToLatin(decoded)
	}

	q := Query{
		Raw:           raw,
		Decoded:       decoded,
		Translit:      tl,
		Script:        langhint.Detect(decoded),
		DecodeFailed:  !ok,
		lowerDecoded:  strings.ToLower(decoded),
		lowerTranslit: strings.ToLower(tl),
		normDecoded:   normalize.Text(decoded),
		normTranslit:  normalize.Text(tl),
	}
	q.Tokens = tokens(q.lowerDecoded, q.lowerTranslit)
	return q
}

// Empty reports whether nothing is left of the query after decode and trim
func (q Query) Empty() bool { return q.Decoded == "" }

// tokens splits the inputs on whitespace and appends slang expansions of each
// token; duplicates are dropped keeping the first occurrence
func tokens(inputs ...string) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(t string) {
		if t == "" {
			return
		}
		if _, dup := seen[t]; dup {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	for _, in := range inputs {
		for _, t := range strings.Fields(in) {
			add(t)
			for _, e := range slang.Expand(t) {
				add(strings.ToLower(e))
			}
		}
	}
	return out
}
