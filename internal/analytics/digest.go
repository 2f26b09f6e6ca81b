// Package analytics derives topic digests and per-prompt summaries from
// already-fetched interactions. Functions here are pure and do no I/O.
package analytics

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ArowuTest/newslens-backend/internal/models"
)

const (
	// DigestSize is the number of topics returned by Digest.
	DigestSize = 5
	// minTokenLength is the longest token that is still discarded.
	minTokenLength = 3
)

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// Digest returns up to DigestSize of the most frequent words longer than
// three characters across the interactions' results. Ties keep the order in
// which words were first seen. Callers must not pass an empty slice.
func Digest(interactions []models.Interaction) []string {
	counts := make(map[string]int)
	var order []string

	for _, interaction := range interactions {
		for _, token := range Tokenize(interaction.Result) {
			if _, seen := counts[token]; !seen {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > DigestSize {
		order = order[:DigestSize]
	}
	if order == nil {
		order = []string{}
	}
	return order
}

// Tokenize splits text on runs of non-word characters, lowercases each token
// and drops tokens of three characters or fewer.
func Tokenize(text string) []string {
	var tokens []string
	for _, raw := range nonWord.Split(text, -1) {
		token := strings.ToLower(raw)
		if utf8.RuneCountInString(token) <= minTokenLength {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
