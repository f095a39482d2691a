package match

import (
	"strings"

	"netmatch/internal/core/normalize"
	"netmatch/internal/core/translit"
)

// Strategy names the cascade step that accepted a candidate
type Strategy uint8

const (
	// StrategyNone means no step accepted the candidate
	StrategyNone Strategy = iota
	// StrategyExact is a case-insensitive substring hit of the decoded or transliterated query
	StrategyExact
	// StrategyNormalized is a substring hit after both sides were normalized
	StrategyNormalized
	// StrategyToken is a hit of any query token or slang expansion
	StrategyToken
)

// String returns the log label of s
func (s Strategy) String() string {
	switch s {
	case StrategyExact:
		return "exact"
	case StrategyNormalized:
		return "normalized"
	case StrategyToken:
		return "token"
	default:
		return "none"
	}
}

// Named is any record that exposes a display name
type Named interface {
	Name() string
}

// Hit pairs an accepted item with the strategy that accepted it
type Hit[T Named] struct {
	Item     T
	Strategy Strategy
}

// Match runs the cascade for a single candidate name
// Strategies are tried in order and the first success wins
func (q Query) Match(name string) Strategy {
	nameLower := strings.ToLower(name)

	// A exact substring
	if strings.Contains(nameLower, q.lowerDecoded) || strings.Contains(nameLower, q.lowerTranslit) {
		return StrategyExact
	}

	// B normalized substring
	nameNorm := normalize.Text(name)
	if strings.Contains(nameNorm, q.normDecoded) || strings.Contains(nameNorm, q.normTranslit) {
		return StrategyNormalized
	}

	// C token overlap, name side also rendered in latin
	nameTranslitLower := strings.ToLower(translit.ToLatin(name))
	for _, t := range q.Tokens {
		if strings.Contains(nameLower, t) || strings.Contains(nameTranslitLower, t) {
			return StrategyToken
		}
	}
	return StrategyNone
}

// Explain filters items and reports which strategy accepted each one
// The result is a subsequence of items in input order and never repeats an element
func Explain[T Named](q Query, items []T) []Hit[T] {
	if len(items) == 0 {
		return nil
	}
	out := make([]Hit[T], 0, len(items))
	for _, it := range items {
		if s := q.Match(it.Name()); s != StrategyNone {
			out = append(out, Hit[T]{Item: it, Strategy: s})
		}
	}
	return out
}

// Filter returns the items of the list that match raw, preserving input order
// An empty query after decode and trim matches every item
func Filter[T Named](raw string, items []T) []T {
	return Items(Explain(Prepare(raw), items))
}

// Items strips the strategy from a hit list
func Items[T Named](hits []Hit[T]) []T {
	out := make([]T, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.Item)
	}
	return out
}
