package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mwhelan/solace/internal/analysis"
	"github.com/mwhelan/solace/internal/domain"
	"github.com/mwhelan/solace/internal/repository"
)

type checkInService struct {
	moods    repository.MoodRepo
	profiles repository.UserProfileRepo
	analyzer *analysis.Analyzer
	observer UseCaseObserver
}

// NewCheckInService creates the daily check-in service.
func NewCheckInService(moods repository.MoodRepo, profiles repository.UserProfileRepo, analyzer *analysis.Analyzer, observers ...UseCaseObserver) CheckInService {
	return &checkInService{
		moods:    moods,
		profiles: profiles,
		analyzer: analyzer,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *checkInService) RecordMood(ctx context.Context, level domain.MoodLevel, note string) (*CheckInResult, error) {
	started := time.Now()

	if !domain.ValidMoodLevels[string(level)] {
		return nil, fmt.Errorf("unknown mood level %q", level)
	}

	now := time.Now().UTC()
	entry := &domain.MoodEntry{
		ID:         uuid.New().String(),
		Level:      level,
		Note:       note,
		RecordedAt: now,
		CreatedAt:  now,
	}
	err := s.moods.Create(ctx, entry)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "checkin.record_mood",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"level": string(level)},
		StartedAt: started,
	})
	if err != nil {
		return nil, err
	}

	result := &CheckInResult{
		Entry:  entry,
		Prompt: s.analyzer.SuggestMoodPrompt(level.Value()),
	}
	if note != "" {
		result.Response = s.analyzer.Respond(note)
	} else {
		result.Response = s.analyzer.RespondToMood(level.Negative())
	}
	return result, nil
}

func (s *checkInService) LatestMood(ctx context.Context) (*domain.MoodEntry, error) {
	entry, err := s.moods.Latest(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("loading latest mood: %w", err)
	}
	return entry, nil
}

func (s *checkInService) Profile(ctx context.Context) (*domain.UserProfile, error) {
	return s.profiles.Get(ctx)
}

func (s *checkInService) SaveProfile(ctx context.Context, p *domain.UserProfile) error {
	if p.CheckInHour < 0 || p.CheckInHour > 23 {
		return fmt.Errorf("check-in hour %d out of range", p.CheckInHour)
	}
	return s.profiles.Upsert(ctx, p)
}
