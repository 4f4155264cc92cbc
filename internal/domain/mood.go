package domain

import "time"

// MoodEntry is a single recorded mood check-in.
type MoodEntry struct {
	ID         string
	Level      MoodLevel
	Note       string
	RecordedAt time.Time
	CreatedAt  time.Time
}
