package util

// Levenshtein returns the edit distance between two strings, counted in runes.
// Two rows are kept; the shorter string indexes the columns.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			sub := prev[j-1]
			if ra[i-1] != rb[j-1] {
				sub++
			}
			curr[j] = min(sub, prev[j]+1, curr[j-1]+1)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Distances returns Levenshtein(word, s) for every candidate s.
func Distances(word string, candidates []string) []int {
	out := make([]int, len(candidates))
	for i, c := range candidates {
		out[i] = Levenshtein(word, c)
	}
	return out
}
