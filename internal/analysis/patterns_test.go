package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPatterns_EmptyInput(t *testing.T) {
	a := newTestAnalyzer(1)

	assert.Empty(t, a.DetectPatterns(""))
}

func TestDetectPatterns_GreetingAndQuestion(t *testing.T) {
	a := newTestAnalyzer(1)

	got := a.DetectPatterns("Hello there, how are you?")
	assert.Contains(t, got, CategoryGreeting)
	assert.Contains(t, got, CategoryQuestion)
}

func TestDetectPatterns_CaseInsensitive(t *testing.T) {
	a := newTestAnalyzer(1)

	got := a.DetectPatterns("GOOD MORNING EVERYONE")
	assert.Contains(t, got, CategoryGreeting)
}

func TestDetectPatterns_WordBoundaries(t *testing.T) {
	a := newTestAnalyzer(1)

	// "hives" must not trigger the greeting pattern's "hi".
	got := a.DetectPatterns("the hives were spreading")
	assert.NotContains(t, got, CategoryGreeting)
}

func TestDetectPatterns_MultipleCategories(t *testing.T) {
	a := newTestAnalyzer(1)

	got := a.DetectPatterns("hi, the stress is getting to me and I can't sleep, thank you for listening")
	assert.Contains(t, got, CategoryGreeting)
	assert.Contains(t, got, CategoryStress)
	assert.Contains(t, got, CategorySleep)
	assert.Contains(t, got, CategoryGratitude)
}

func TestDetectPatterns_SelfCritical(t *testing.T) {
	a := newTestAnalyzer(1)

	got := a.DetectPatterns("I am such a failure, I'm not good enough")
	assert.Contains(t, got, CategorySelfCritical)
}

func TestDetectPatterns_NoMatches(t *testing.T) {
	a := newTestAnalyzer(1)

	assert.Empty(t, a.DetectPatterns("the quick brown fox jumps over the lazy dog"))
}

func TestDetectPatterns_DeterministicOrder(t *testing.T) {
	a := newTestAnalyzer(1)

	text := "hello, all this anxiety leaves me tired, why is this happening?"
	first := a.DetectPatterns(text)
	for range 10 {
		assert.Equal(t, first, a.DetectPatterns(text))
	}
	require.NotEmpty(t, first)
}

func TestDetectPatterns_StemFormsOnly(t *testing.T) {
	a := newTestAnalyzer(1)

	// The stress pattern matches the bare stem, not inflected forms.
	assert.Contains(t, a.DetectPatterns("the stress is constant"), CategoryStress)
	assert.NotContains(t, a.DetectPatterns("I am stressed"), CategoryStress)
}
