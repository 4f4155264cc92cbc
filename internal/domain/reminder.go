package domain

import (
	"errors"
	"time"
)

// Reminder is a scheduled wellbeing nudge. Completing a recurring reminder
// produces a fresh instance at the next occurrence.
type Reminder struct {
	ID          string
	Title       string
	Description string
	At          time.Time
	Recurrence  Recurrence
	Completed   bool
	CreatedAt   time.Time
}

// ErrNotRecurring is returned by NextOccurrence for one-shot reminders.
var ErrNotRecurring = errors.New("reminder does not recur")

// Due reports whether the reminder is at or past its scheduled time and not
// yet completed.
func (r *Reminder) Due(now time.Time) bool {
	return !r.Completed && !r.At.After(now)
}

// NextOccurrence returns the scheduled time of the instance that follows this
// one. Monthly recurrence approximates a month as 30 days, matching the
// original schedule arithmetic.
func (r *Reminder) NextOccurrence() (time.Time, error) {
	switch r.Recurrence {
	case RecurDaily:
		return r.At.AddDate(0, 0, 1), nil
	case RecurWeekly:
		return r.At.AddDate(0, 0, 7), nil
	case RecurMonthly:
		return r.At.AddDate(0, 0, 30), nil
	default:
		return time.Time{}, ErrNotRecurring
	}
}

// Validate checks the fields required to store a reminder.
func (r *Reminder) Validate() error {
	if r.Title == "" {
		return errors.New("reminder title is required")
	}
	if r.At.IsZero() {
		return errors.New("reminder time is required")
	}
	if !ValidRecurrences[string(r.Recurrence)] {
		return errors.New("invalid recurrence")
	}
	return nil
}
