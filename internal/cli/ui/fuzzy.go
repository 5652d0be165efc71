package ui

import (
	"sort"
	"strings"
)

const (
	// DefaultMaxDistance is the default maximum edit distance to consider for fuzzy matching
	DefaultMaxDistance = 3
	// DefaultMaxSuggestions is the default maximum number of suggestions to return
	DefaultMaxSuggestions = 3
)

// FuzzyMatchOptions configures fuzzy matching behavior
type FuzzyMatchOptions struct {
	MaxDistance    int  // Maximum Levenshtein distance to consider (default: 3)
	MaxSuggestions int  // Maximum number of suggestions to return (default: 3)
	CaseSensitive  bool // Whether matching is case-sensitive (default: false)
}

type suggestion struct {
	value    string
	distance int
}

// FindSimilar finds strings similar to the target using Levenshtein distance.
// Ties keep candidate order.
//
// Example:
//
//	FindSimilar("BlocoFindOneResul", []string{"BlocoFindOneResult", "BlocoList"}, nil)
//	// Returns: ["BlocoFindOneResult"]
func FindSimilar(target string, candidates []string, opts *FuzzyMatchOptions) []string {
	o := withDefaults(opts)

	var suggestions []suggestion
	for _, candidate := range candidates {
		dist := LevenshteinDistance(fold(target, o), fold(candidate, o))
		if dist <= o.MaxDistance {
			suggestions = append(suggestions, suggestion{value: candidate, distance: dist})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].distance < suggestions[j].distance
	})

	return top(suggestions, o.MaxSuggestions)
}

// SuggestTokens returns registry tokens close to target. Besides small
// edit distances it accepts tokens sharing the target as a prefix, so that
// "DiaCalendario" suggests "DiaCalendarioFindOneResult".
func SuggestTokens(target string, tokens []string, opts *FuzzyMatchOptions) []string {
	o := withDefaults(opts)
	t := fold(target, o)

	seen := make(map[string]bool)
	var suggestions []suggestion
	for _, tok := range tokens {
		c := fold(tok, o)
		dist := LevenshteinDistance(t, c)
		if dist > o.MaxDistance && t != "" && strings.HasPrefix(c, t) {
			// Prefix hits rank after every typo match
			dist = o.MaxDistance + len(c) - len(t)
		} else if dist > o.MaxDistance {
			continue
		}
		if !seen[tok] {
			seen[tok] = true
			suggestions = append(suggestions, suggestion{value: tok, distance: dist})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].distance < suggestions[j].distance
	})

	return top(suggestions, o.MaxSuggestions)
}

// LevenshteinDistance calculates the minimum number of single-character
// edits required to change one string into the other.
//
//	LevenshteinDistance("kitten", "sitting") // Returns: 3
func LevenshteinDistance(s1, s2 string) int {
	a, b := []rune(s1), []rune(s2)
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
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// FindBestMatch returns the single best match for a target string, or an
// empty string if no match is within the max distance
func FindBestMatch(target string, candidates []string, opts *FuzzyMatchOptions) string {
	matches := FindSimilar(target, candidates, opts)
	if len(matches) == 0 {
		return ""
	}
	return matches[0]
}

func withDefaults(opts *FuzzyMatchOptions) FuzzyMatchOptions {
	o := FuzzyMatchOptions{}
	if opts != nil {
		o = *opts
	}
	if o.MaxDistance == 0 {
		o.MaxDistance = DefaultMaxDistance
	}
	if o.MaxSuggestions == 0 {
		o.MaxSuggestions = DefaultMaxSuggestions
	}
	return o
}

func fold(s string, o FuzzyMatchOptions) string {
	if o.CaseSensitive {
		return s
	}
	return strings.ToLower(s)
}

func top(suggestions []suggestion, n int) []string {
	result := make([]string, 0, n)
	for i := 0; i < len(suggestions) && i < n; i++ {
		result = append(result, suggestions[i].value)
	}
	return result
}
