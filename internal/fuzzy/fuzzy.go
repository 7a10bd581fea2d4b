// Package fuzzy ranks candidate names by edit distance for the
// "did you mean" suggestions attached to unknown-flag and
// unknown-command errors.
package fuzzy

import "strings"

// minInputLength guards against suggesting on one-character typos,
// where almost everything is within distance two.
const minInputLength = 2

// FindBest returns the candidate closest to input, or "" when nothing
// is within maxDistance. Candidates closer in edit distance win; among
// equals, a shared prefix with the input breaks the tie.
func FindBest(input string, candidates []string, maxDistance int) string {
	if len(input) < minInputLength {
		return ""
	}
	input = strings.ToLower(input)

	best := ""
	bestDist := maxDistance + 1
	bestPrefix := -1
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}
		d := levenshtein(input, lower, maxDistance)
		if d > maxDistance {
			continue
		}
		p := commonPrefixLength(input, lower)
		if d < bestDist || (d == bestDist && p > bestPrefix) {
			best = candidate
			bestDist = d
			bestPrefix = p
		}
	}
	return best
}

// levenshtein computes edit distance with two rolling rows, bailing out
// early once every cell in a row exceeds maxDistance.
func levenshtein(a, b string, maxDistance int) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > maxDistance {
		return maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			cur[j] = minThree(
				cur[j-1]+1,
				prev[j]+1,
				prev[j-1]+cost,
			)
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}
		if rowMin > maxDistance {
			return maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

func commonPrefixLength(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func minThree(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
