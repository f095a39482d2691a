// Package fuzzy scores how alike two names are on a 0..100 scale and picks the
// single best candidate for a query
//
// Scores combine a plain ratio, a best window partial ratio, a sorted token
// ratio and a token set ratio. All ratios are built on the longest common
// subsequence of the two processed strings
package fuzzy

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/cases"

	"netmatch/internal/core/translit"
)

// DefaultThreshold is the minimum score BestMatch accepts
const DefaultThreshold = 50

// Result is the winning candidate of a BestMatch call
type Result struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
	Score int    `json:"score"`
}

// Matcher picks the best scoring candidate at or above Threshold
type Matcher struct {
	Threshold int
}

// New returns a Matcher; a threshold outside 0..100 falls back to DefaultThreshold
func New(threshold int) *Matcher {
	if threshold < 0 || threshold > 100 {
		threshold = DefaultThreshold
	}
	return &Matcher{Threshold: threshold}
}

// BestMatch runs a default Matcher
func BestMatch(query string, candidates []string) (Result, bool) {
	return New(DefaultThreshold).Best(query, candidates)
}

// Best transliterates query to latin, scores it against every candidate and
// returns the highest score when it reaches the threshold
// Ties keep the earliest candidate
func (m *Matcher) Best(query string, candidates []string) (Result, bool) {
	r, ok := m.Top(query, candidates)
	if !ok || r.Score < m.Threshold {
		return Result{}, false
	}
	return r, true
}

// Top returns the highest scoring candidate regardless of the threshold
// ok is false only when there are no candidates
func (m *Matcher) Top(query string, candidates []string) (Result, bool) {
	if len(candidates) == 0 {
		return Result{}, false
	}
	q := process(translit.ToLatin(query))
	best := Result{Index: -1, Score: -1}
	for i, c := range candidates {
		s := weighted(q, process(c))
		if s > best.Score {
			best = Result{Name: c, Index: i, Score: s}
		}
	}
	return best, true
}

// Score returns the weighted similarity of a and b without transliteration
func Score(a, b string) int { return weighted(process(a), process(b)) }

// process folds case, turns every non letter/digit into a space and collapses runs
func process(s string) string {
	if s == "" {
		return ""
	}
	s = cases.Fold().String(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// weighted blends the ratios of two processed strings
// Close lengths use whole string comparisons; once one side is 1.5x longer the
// partial scores join in, scaled down further past 8x
func weighted(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	la, lb := runeLen(a), runeLen(b)
	lenRatio := float64(max(la, lb)) / float64(min(la, lb))

	const unbaseScale = 0.95
	best := ratio(a, b)

	if lenRatio < 1.5 {
		best = math.Max(best, tokenSort(a, b)*unbaseScale)
		best = math.Max(best, tokenSet(a, b)*unbaseScale)
		return round(best)
	}

	partialScale := 0.9
	if lenRatio > 8 {
		partialScale = 0.6
	}
	best = math.Max(best, partial(a, b)*partialScale)
	best = math.Max(best, partial(sortTokens(a), sortTokens(b))*unbaseScale*partialScale)
	best = math.Max(best, tokenSet(a, b)*unbaseScale)
	return round(best)
}

// ratio is 100 * 2*lcs / (len(a)+len(b)) over runes
func ratio(a, b string) float64 {
	total := runeLen(a) + runeLen(b)
	if total == 0 {
		return 0
	}
	return 100 * float64(2*edlib.LCS(a, b)) / float64(total)
}

// partial slides the shorter string over the longer one and keeps the best ratio
func partial(a, b string) float64 {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}
	s := string(short)
	best := 0.0
	for i := 0; i+len(short) <= len(long); i++ {
		r := ratio(s, string(long[i:i+len(short)]))
		if r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

// tokenSort compares the strings with their tokens sorted
func tokenSort(a, b string) float64 { return ratio(sortTokens(a), sortTokens(b)) }

// tokenSet compares the shared tokens against each side's full token set
func tokenSet(a, b string) float64 {
	ta, tb := tokenSetOf(a), tokenSetOf(b)
	var sect, onlyA, onlyB []string
	for t := range ta {
		if _, ok := tb[t]; ok {
			sect = append(sect, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for t := range tb {
		if _, ok := ta[t]; !ok {
			onlyB = append(onlyB, t)
		}
	}
	sort.Strings(sect)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	t0 := strings.Join(sect, " ")
	t1 := strings.TrimSpace(t0 + " " + strings.Join(onlyA, " "))
	t2 := strings.TrimSpace(t0 + " " + strings.Join(onlyB, " "))

	best := ratio(t1, t2)
	if t0 != "" {
		best = math.Max(best, ratio(t0, t1))
		best = math.Max(best, ratio(t0, t2))
	}
	return best
}

func tokenSetOf(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, t := range strings.Fields(s) {
		out[t] = struct{}{}
	}
	return out
}

func sortTokens(s string) string {
	f := strings.Fields(s)
	sort.Strings(f)
	return strings.Join(f, " ")
}

func runeLen(s string) int { return len([]rune(s)) }

func round(f float64) int { return int(math.Round(f)) }
