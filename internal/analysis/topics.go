package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultTopicLimit is the number of topics returned when callers pass a
// non-positive limit.
const DefaultTopicLimit = 3

// contentToken matches letters-only tokens of three or more characters.
var contentToken = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// ExtractTopics returns up to limit content words ordered by descending
// frequency, ties broken by first occurrence. Stopwords are removed before
// counting. Empty input yields nil.
func (a *Analyzer) ExtractTopics(text string, limit int) []string {
	if text == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultTopicLimit
	}

	counts := make(map[string]int)
	var order []string
	for _, word := range contentToken.FindAllString(strings.ToLower(text), -1) {
		if a.tables.Stopwords[word] {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	// order is already first-occurrence sorted; a stable sort by count keeps
	// that as the tie-break.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

// defaultStopwords holds common function words, pronouns, contractions, and
// auxiliary verbs excluded from topic extraction.
var defaultStopwords = buildStopwords(
	"the", "a", "an", "and", "or", "but", "is", "are", "was",
	"were", "be", "been", "being", "in", "on", "at", "to", "for",
	"with", "by", "about", "like", "through", "over", "before",
	"between", "after", "since", "without", "under", "within",
	"along", "following", "across", "behind", "beyond", "plus",
	"except", "up", "down", "out", "off", "above", "below",
	"use", "using", "used", "do", "does", "did", "doing", "done",
	"i", "me", "my", "mine", "myself", "you", "your", "yours",
	"yourself", "he", "him", "his", "himself", "she", "her", "hers",
	"herself", "it", "its", "itself", "we", "us", "our", "ours",
	"ourselves", "they", "them", "their", "theirs", "themselves",
	"this", "that", "these", "those", "here", "there", "when",
	"where", "why", "how", "all", "any", "both", "each", "few",
	"more", "most", "other", "some", "such", "no", "nor", "not",
	"only", "own", "same", "so", "than", "too", "very", "as", "just",
	"can", "will", "should", "now", "i'm", "i'll", "i've", "i'd",
	"you're", "you'll", "you've", "you'd", "he's", "he'll", "he'd",
	"she's", "she'll", "she'd", "it's", "it'll", "it'd", "we're",
	"we'll", "we've", "we'd", "they're", "they'll", "they've", "they'd",
	"don't", "doesn't", "didn't", "can't", "couldn't", "won't",
	"wouldn't", "shouldn't", "haven't", "hasn't", "hadn't", "isn't",
	"aren't", "wasn't", "weren't",
)

func buildStopwords(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
