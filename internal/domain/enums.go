package domain

import "fmt"

// MoodLevel is the enumerated mood scale used for check-ins.
// The five-point scale maps to numeric values 5 (great) down to 1 (terrible)
// for averaging and charting.
type MoodLevel string

const (
	MoodGreat    MoodLevel = "great"
	MoodGood     MoodLevel = "good"
	MoodOkay     MoodLevel = "okay"
	MoodLow      MoodLevel = "low"
	MoodTerrible MoodLevel = "terrible"
)

// ValidMoodLevels is the canonical set of accepted mood level strings.
var ValidMoodLevels = map[string]bool{
	"great": true, "good": true, "okay": true, "low": true, "terrible": true,
}

// AllMoodLevels lists the levels from best to worst, the order they are
// presented in check-in forms and chart axes.
var AllMoodLevels = []MoodLevel{MoodGreat, MoodGood, MoodOkay, MoodLow, MoodTerrible}

// Value returns the numeric weight of a mood level (5 best, 1 worst).
// Unknown levels read as 3 (okay) so a corrupt row cannot skew an average
// to an extreme.
func (m MoodLevel) Value() int {
	switch m {
	case MoodGreat:
		return 5
	case MoodGood:
		return 4
	case MoodOkay:
		return 3
	case MoodLow:
		return 2
	case MoodTerrible:
		return 1
	default:
		return 3
	}
}

// Emoji returns the display glyph for a mood level.
func (m MoodLevel) Emoji() string {
	switch m {
	case MoodGreat:
		return "😊"
	case MoodGood:
		return "😌"
	case MoodOkay:
		return "😐"
	case MoodLow:
		return "😔"
	case MoodTerrible:
		return "😢"
	default:
		return "😐"
	}
}

// Label returns the human-readable name shown in forms and tables.
func (m MoodLevel) Label() string {
	switch m {
	case MoodGreat:
		return "Great"
	case MoodGood:
		return "Good"
	case MoodOkay:
		return "Okay"
	case MoodLow:
		return "Not so good"
	case MoodTerrible:
		return "Terrible"
	default:
		return string(m)
	}
}

// Negative reports whether the level sits below the midpoint of the scale.
func (m MoodLevel) Negative() bool {
	return m.Value() < 3
}

// MoodLevelFromValue maps a rounded numeric average back to the nearest level.
func MoodLevelFromValue(v int) MoodLevel {
	switch {
	case v >= 5:
		return MoodGreat
	case v == 4:
		return MoodGood
	case v == 3:
		return MoodOkay
	case v == 2:
		return MoodLow
	default:
		return MoodTerrible
	}
}

// ParseMoodLevel validates and converts a raw string into a MoodLevel.
func ParseMoodLevel(s string) (MoodLevel, error) {
	if !ValidMoodLevels[s] {
		return "", fmt.Errorf("unknown mood level %q", s)
	}
	return MoodLevel(s), nil
}

// Recurrence describes how a reminder repeats after completion.
type Recurrence string

const (
	RecurNone    Recurrence = "none"
	RecurDaily   Recurrence = "daily"
	RecurWeekly  Recurrence = "weekly"
	RecurMonthly Recurrence = "monthly"
)

// ValidRecurrences is the canonical set of accepted recurrence strings.
var ValidRecurrences = map[string]bool{
	"none": true, "daily": true, "weekly": true, "monthly": true,
}

// ParseRecurrence validates and converts a raw string into a Recurrence.
// The empty string reads as RecurNone.
func ParseRecurrence(s string) (Recurrence, error) {
	if s == "" {
		return RecurNone, nil
	}
	if !ValidRecurrences[s] {
		return "", fmt.Errorf("unknown recurrence %q", s)
	}
	return Recurrence(s), nil
}
