// Package normform selects the canonical surface spelling among the
// case variants of a term: given a provisional ("pseudo-normal") form
// and a cluster of candidates, it picks the candidate closest to the
// provisional form by edit distance that still contains the head word.
package normform

// DamerauLevenshtein returns the optimal-string-alignment edit distance
// between two strings: insertions, deletions, substitutions, and
// transpositions of adjacent runes each cost 1. Distances are computed
// over runes, not bytes — Cyrillic is two bytes per letter in UTF-8.
func DamerauLevenshtein(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)
	len1 := len(r1)
	len2 := len(r2)

	if len1 == 0 {
		return len2
	}
	if len2 == 0 {
		return len1
	}

	matrix := make([][]int, len1+1)
	for i := range matrix {
		matrix[i] = make([]int, len2+1)
	}
	for i := 0; i <= len1; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
			if i > 1 && j > 1 && r1[i-1] == r2[j-2] && r1[i-2] == r2[j-1] {
				matrix[i][j] = min(matrix[i][j], matrix[i-2][j-2]+1) // transposition
			}
		}
	}

	return matrix[len1][len2]
}

// NormalizedDistance maps DamerauLevenshtein into [0,1] by dividing by
// the longer rune length. Two empty strings are at distance 0.
func NormalizedDistance(s1, s2 string) float64 {
	longest := max(len([]rune(s1)), len([]rune(s2)))
	if longest == 0 {
		return 0
	}
	return float64(DamerauLevenshtein(s1, s2)) / float64(longest)
}
