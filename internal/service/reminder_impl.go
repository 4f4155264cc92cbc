package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mwhelan/solace/internal/db"
	"github.com/mwhelan/solace/internal/domain"
	"github.com/mwhelan/solace/internal/repository"
)

type reminderService struct {
	reminders repository.ReminderRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

// NewReminderService creates the reminder service.
func NewReminderService(reminders repository.ReminderRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ReminderService {
	return &reminderService{
		reminders: reminders,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *reminderService) Add(ctx context.Context, title, description string, at time.Time, recurrence domain.Recurrence) (*domain.Reminder, error) {
	rem := &domain.Reminder{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		At:          at.UTC(),
		Recurrence:  recurrence,
		CreatedAt:   time.Now().UTC(),
	}
	if err := rem.Validate(); err != nil {
		return nil, err
	}
	if err := s.reminders.Create(ctx, rem); err != nil {
		return nil, err
	}
	return rem, nil
}

func (s *reminderService) List(ctx context.Context, includeCompleted bool) ([]*domain.Reminder, error) {
	return s.reminders.List(ctx, includeCompleted)
}

func (s *reminderService) Due(ctx context.Context, now time.Time) ([]*domain.Reminder, error) {
	return s.reminders.ListDue(ctx, now.UTC())
}

// Complete marks a reminder done. Recurring reminders roll over: the
// completion and the creation of the next instance commit atomically, and the
// new instance is returned. One-shot completions return nil.
func (s *reminderService) Complete(ctx context.Context, id string) (*domain.Reminder, error) {
	started := time.Now()
	var next *domain.Reminder

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txReminders := repository.NewSQLiteReminderRepo(tx)

		rem, err := txReminders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		rem.Completed = true
		if err := txReminders.Update(ctx, rem); err != nil {
			return err
		}

		if rem.Recurrence == domain.RecurNone {
			return nil
		}
		at, err := rem.NextOccurrence()
		if err != nil {
			return err
		}
		next = &domain.Reminder{
			ID:          uuid.New().String(),
			Title:       rem.Title,
			Description: rem.Description,
			At:          at,
			Recurrence:  rem.Recurrence,
			CreatedAt:   time.Now().UTC(),
		}
		return txReminders.Create(ctx, next)
	})

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "reminder.complete",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"rolled_over": next != nil},
		StartedAt: started,
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

func (s *reminderService) Delete(ctx context.Context, id string) error {
	return s.reminders.Delete(ctx, id)
}

// Suggestions returns the built-in self-care reminder templates.
func (s *reminderService) Suggestions() []ReminderSuggestion {
	return []ReminderSuggestion{
		{
			Title:       "Daily Mood Check-in",
			Description: "Take a moment to reflect on your mood and log it.",
			Recurrence:  domain.RecurDaily,
		},
		{
			Title:       "Weekly Journal Session",
			Description: "Spend 15 minutes journaling about your week.",
			Recurrence:  domain.RecurWeekly,
		},
		{
			Title:       "Anxiety Management Exercise",
			Description: "Practice a technique from the anxiety module.",
			Recurrence:  domain.RecurDaily,
		},
		{
			Title:       "Evening Reflection",
			Description: "Reflect on three good things that happened today.",
			Recurrence:  domain.RecurDaily,
		},
		{
			Title:       "Stress Check",
			Description: "Check your stress levels and practice a relaxation technique if needed.",
			Recurrence:  domain.RecurDaily,
		},
	}
}

// SuggestCheckInTime proposes tomorrow at the hour the user schedules
// reminders most often, or 9am when there is no history.
func (s *reminderService) SuggestCheckInTime(ctx context.Context, now time.Time) (time.Time, error) {
	existing, err := s.reminders.List(ctx, true)
	if err != nil {
		return time.Time{}, err
	}

	hour := 9
	if len(existing) > 0 {
		counts := make(map[int]int)
		for _, r := range existing {
			// Stored times are UTC; count the hour the user actually sees.
			counts[r.At.In(now.Location()).Hour()]++
		}
		best := -1
		for h, c := range counts {
			if c > best || (c == best && h < hour) {
				hour, best = h, c
			}
		}
	}

	tomorrow := now.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), hour, 0, 0, 0, now.Location()), nil
}
