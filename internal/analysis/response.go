package analysis

// Respond selects a response for text. When patterns are detected, the
// highest-priority matched category's bank is used; otherwise the fallback
// bank matching the sentiment label. Always returns a non-empty string.
func (a *Analyzer) Respond(text string) string {
	detected := a.DetectPatterns(text)

	if len(detected) > 0 {
		matched := make(map[Category]bool, len(detected))
		for _, c := range detected {
			matched[c] = true
		}
		for _, cat := range responsePriority {
			if matched[cat] {
				if bank := a.tables.Responses[cat]; len(bank) > 0 {
					return a.pick(bank)
				}
			}
		}
	}

	sentiment := a.AnalyzeSentiment(text)
	if bank := a.tables.Fallbacks[sentiment.Label]; len(bank) > 0 {
		return a.pick(bank)
	}
	return a.pick(a.tables.Fallbacks[LabelNeutral])
}

// RespondToMood returns an acknowledgement for a recorded mood by valence,
// drawing from the sentiment fallback banks.
func (a *Analyzer) RespondToMood(negative bool) string {
	if negative {
		return a.pick(a.tables.Fallbacks[LabelNegative])
	}
	return a.pick(a.tables.Fallbacks[LabelPositive])
}
