package gallery

import "strings"

// Search returns the indices of artworks whose title or description fuzzily
// matches query, in catalog order. An empty query matches everything.
func (c *Catalog) Search(query string) []int {
	queryLower := []rune(strings.ToLower(strings.TrimSpace(query)))

	var results []int
	for i, a := range c.artworks {
		if fuzzyMatch(queryLower, strings.ToLower(a.Title)) ||
			fuzzyMatch(queryLower, strings.ToLower(a.Description)) {
			results = append(results, i)
		}
	}
	return results
}

// fuzzyMatch reports whether query appears in text as a subsequence.
func fuzzyMatch(query []rune, text string) bool {
	queryIdx := 0
	for _, char := range text {
		if queryIdx < len(query) && char == query[queryIdx] {
			queryIdx++
		}
	}
	return queryIdx == len(query)
}
