package analysis

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestAnalyzer(seed int64) *Analyzer {
	return NewDefault(rand.New(rand.NewSource(seed)))
}

func TestAnalyzeSentiment_EmptyInput(t *testing.T) {
	a := newTestAnalyzer(1)

	got := a.AnalyzeSentiment("")
	assert.Equal(t, Sentiment{Score: 0, Label: LabelNeutral, Confidence: 0}, got)
}

func TestAnalyzeSentiment_NoWordTokens(t *testing.T) {
	a := newTestAnalyzer(1)

	got := a.AnalyzeSentiment("... !!! ---")
	assert.Equal(t, Sentiment{Score: 0, Label: LabelNeutral, Confidence: 0}, got)
}

func TestAnalyzeSentiment_NegationFlipsNextWord(t *testing.T) {
	a := newTestAnalyzer(1)

	got := a.AnalyzeSentiment("not good")
	assert.Equal(t, -1.0, got.Score)
	assert.Equal(t, LabelNegative, got.Label)
	assert.InDelta(t, 0.5, got.Confidence, 1e-9, "one scored match out of two tokens")
}

func TestAnalyzeSentiment_RepeatedPositive(t *testing.T) {
	a := newTestAnalyzer(1)

	got := a.AnalyzeSentiment("good good")
	assert.Equal(t, 1.0, got.Score)
	assert.Equal(t, LabelPositive, got.Label)
	assert.Equal(t, 1.0, got.Confidence)
}

func TestAnalyzeSentiment_NegationSurvivesUnknownWords(t *testing.T) {
	a := newTestAnalyzer(1)

	// "very" is not in the lexicon; the armed flag carries to "good".
	got := a.AnalyzeSentiment("not very good")
	assert.Equal(t, -1.0, got.Score)
	assert.Equal(t, LabelNegative, got.Label)
}

func TestAnalyzeSentiment_TrailingNegationDropped(t *testing.T) {
	a := newTestAnalyzer(1)

	got := a.AnalyzeSentiment("good but not")
	assert.Equal(t, 1.0, got.Score, "a trailing trigger contributes nothing")
	assert.Equal(t, LabelPositive, got.Label)
}

func TestAnalyzeSentiment_DoubleNegationDoesNotCancel(t *testing.T) {
	a := newTestAnalyzer(1)

	// The second trigger only re-arms the flag; it is not itself negatable.
	got := a.AnalyzeSentiment("not never happy")
	assert.Equal(t, -1.0, got.Score)
}

func TestAnalyzeSentiment_ContractionsAreSingleTokens(t *testing.T) {
	a := newTestAnalyzer(1)

	got := a.AnalyzeSentiment("don't love this")
	assert.Equal(t, -2.0, got.Score, "don't negates love (+2)")
	assert.Equal(t, LabelNegative, got.Label)
}

func TestAnalyzeSentiment_UnknownWordsDiluteConfidence(t *testing.T) {
	a := newTestAnalyzer(1)

	got := a.AnalyzeSentiment("the weather report made me happy")
	assert.Equal(t, 1.0, got.Score)
	assert.InDelta(t, 1.0/6.0, got.Confidence, 1e-9)
}

func TestAnalyzeSentiment_MixedStaysNeutral(t *testing.T) {
	a := newTestAnalyzer(1)

	// +1 and -1 cancel to a normalized score of 0.
	got := a.AnalyzeSentiment("good and bad")
	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, LabelNeutral, got.Label)
}

func TestAnalyzeSentiment_ConfidenceAlwaysInRange(t *testing.T) {
	a := newTestAnalyzer(1)

	inputs := []string{
		"",
		"good",
		"not",
		"good great wonderful amazing love",
		"the quick brown fox",
		"don't don't don't",
		"I can't believe how awful and terrible and horrible today was!!!",
	}
	for _, in := range inputs {
		got := a.AnalyzeSentiment(in)
		assert.GreaterOrEqual(t, got.Confidence, 0.0, "input %q", in)
		assert.LessOrEqual(t, got.Confidence, 1.0, "input %q", in)
	}
}

func TestAnalyzeSentiment_DeterministicAcrossCalls(t *testing.T) {
	a := newTestAnalyzer(1)

	first := a.AnalyzeSentiment("I feel stressed but hopeful")
	second := a.AnalyzeSentiment("I feel stressed but hopeful")
	assert.Equal(t, first, second)
}
