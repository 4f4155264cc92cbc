package domain

import (
	"strings"
	"time"
)

// JournalEntry is a free-text journal record, optionally linked to the mood
// logged alongside it and to the prompt that elicited it.
type JournalEntry struct {
	ID        string
	Content   string
	Mood      MoodLevel // empty when no mood was logged with the entry
	Prompt    string
	Tags      []string
	CreatedAt time.Time
}

// HasTag reports whether the entry carries the given tag, case-insensitively.
func (e *JournalEntry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Matches reports whether the entry's content, prompt, or any tag contains
// the query, case-insensitively. Empty queries match nothing.
func (e *JournalEntry) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	if strings.Contains(strings.ToLower(e.Content), q) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Prompt), q) {
		return true
	}
	for _, t := range e.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
