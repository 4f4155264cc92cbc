package analysis

import "fmt"

// SuggestPrompt builds a candidate pool of journal prompts from the detected
// patterns, the sentiment label, and the extracted topics, then returns one
// candidate uniformly at random. Contributions append; they are not
// exclusive. When nothing contributes, the pool falls back to the generic
// default prompts, so the result is always non-empty.
func (a *Analyzer) SuggestPrompt(text string) string {
	detected := a.DetectPatterns(text)
	sentiment := a.AnalyzeSentiment(text)
	topics := a.ExtractTopics(text, DefaultTopicLimit)

	var pool []string

	for _, cat := range []Category{CategoryStress, CategorySleep, CategoryMood, CategorySelfCritical} {
		if containsCategory(detected, cat) {
			pool = append(pool, a.tables.CategoryPrompts[cat]...)
		}
	}

	pool = append(pool, a.tables.LabelPrompts[sentiment.Label]...)

	if len(topics) > 0 {
		pool = append(pool, fmt.Sprintf(
			"What thoughts or feelings come up for you around the topic of %s?", topics[0]))
		if len(topics) >= 2 {
			pool = append(pool, fmt.Sprintf(
				"How do %s and %s connect in your life right now?", topics[0], topics[1]))
		}
	}

	if len(pool) == 0 {
		pool = a.tables.DefaultPrompts
	}

	return a.pick(pool)
}

// SuggestMoodPrompt returns a journal prompt appropriate for a recorded mood
// level value (5 best, 1 worst).
func (a *Analyzer) SuggestMoodPrompt(moodValue int) string {
	switch {
	case moodValue >= 4:
		return a.pick(MoodPrompts[LabelPositive])
	case moodValue == 3:
		return a.pick(MoodPrompts[LabelNeutral])
	default:
		return a.pick(MoodPrompts[LabelNegative])
	}
}

func containsCategory(set []Category, cat Category) bool {
	for _, c := range set {
		if c == cat {
			return true
		}
	}
	return false
}
