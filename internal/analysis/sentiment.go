package analysis

import (
	"regexp"
	"strings"
)

// Label classifies the overall polarity of a text.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNeutral  Label = "neutral"
	LabelNegative Label = "negative"
)

// Sentiment is the result of scoring one text. Score is normalized by the
// number of lexicon hits; Confidence is the fraction of word tokens that hit
// the lexicon, in [0,1].
type Sentiment struct {
	Score      float64
	Label      Label
	Confidence float64
}

// Label thresholds on the normalized score. Fixed, not configurable.
const (
	positiveThreshold = 0.3
	negativeThreshold = -0.3
)

// wordToken matches lowercase word tokens, keeping internal apostrophes so
// contractions like "don't" stay single tokens.
var wordToken = regexp.MustCompile(`\b[\w']+\b`)

// AnalyzeSentiment scores text against the lexicon with single-word negation
// handling. Empty or wordless input yields the neutral zero result, by
// definition rather than as an error.
func (a *Analyzer) AnalyzeSentiment(text string) Sentiment {
	if text == "" {
		return Sentiment{Label: LabelNeutral}
	}

	words := tokenizeWords(text)
	if len(words) == 0 {
		return Sentiment{Label: LabelNeutral}
	}

	score := 0
	totalMatches := 0
	pendingNegation := false

	for i, word := range words {
		weight, inLexicon := a.tables.Lexicon[word]
		if !inLexicon {
			// Unknown tokens still count toward the confidence denominator
			// but contribute nothing; a stale negation flag survives them.
			continue
		}

		if a.tables.Negations[word] {
			// Triggers only arm the flag; they are never scored, and a
			// second trigger does not double-negate.
			pendingNegation = true
			continue
		}

		if pendingNegation && i > 0 {
			weight = -weight
			pendingNegation = false
		}
		score += weight
		totalMatches++
	}

	normalized := float64(score) / float64(max(totalMatches, 1))

	label := LabelNeutral
	switch {
	case normalized > positiveThreshold:
		label = LabelPositive
	case normalized < negativeThreshold:
		label = LabelNegative
	}

	confidence := float64(totalMatches) / float64(max(len(words), 1))
	if confidence > 1 {
		confidence = 1
	}

	return Sentiment{Score: normalized, Label: label, Confidence: confidence}
}

// tokenizeWords lowercases text and splits it into word tokens.
func tokenizeWords(text string) []string {
	return wordToken.FindAllString(strings.ToLower(text), -1)
}
