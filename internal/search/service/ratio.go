package service

import (
	"sort"
	"strings"
)

// indelDistance is the minimum number of single-rune insertions/deletions
// to turn a into b. No substitution discount: a replacement costs 2.
// Single-row DP over runes.
func indelDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min(prev[j], curr[j-1]) + 1
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Ratio is the indel-normalized similarity in [0,100]:
// 100*(len(a)+len(b)-dist)/(len(a)+len(b)). Identical strings score 100,
// including two empties. Symmetric.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 100
	}
	d := indelDistance(ra, rb)
	return 100 * float64(total-d) / float64(total)
}

// TokenSetRatio compares the whitespace token sets of two strings.
// The intersection and the two differences are rebuilt into sorted joined
// strings and the best pairwise Ratio wins. Rewards a query whose tokens
// are a subset of a longer "brand + product" label.
func TokenSetRatio(query, candidate string) float64 {
	qset := tokenSet(query)
	cset := tokenSet(candidate)
	if len(qset) == 0 && len(cset) == 0 {
		return 100
	}
	if len(qset) == 0 || len(cset) == 0 {
		return 0
	}

	var inter, qOnly, cOnly []string
	for tok := range qset {
		if cset[tok] {
			inter = append(inter, tok)
		} else {
			qOnly = append(qOnly, tok)
		}
	}
	for tok := range cset {
		if !qset[tok] {
			cOnly = append(cOnly, tok)
		}
	}
	sort.Strings(inter)
	sort.Strings(qOnly)
	sort.Strings(cOnly)

	si := strings.Join(inter, " ")
	sq := strings.Join(append(append([]string{}, inter...), qOnly...), " ")
	sc := strings.Join(append(append([]string{}, inter...), cOnly...), " ")

	best := Ratio(si, sq)
	if r := Ratio(si, sc); r > best {
		best = r
	}
	if r := Ratio(sq, sc); r > best {
		best = r
	}
	return best
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}
