package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mwhelan/solace/internal/domain"
	"github.com/mwhelan/solace/internal/exercises"
	"github.com/mwhelan/solace/internal/repository"
)

type exerciseService struct {
	logs repository.ExerciseLogRepo

	mu  sync.Mutex
	rng *rand.Rand
}

// NewExerciseService creates the guided exercise service. Random exercise
// selection draws from the given source.
func NewExerciseService(logs repository.ExerciseLogRepo, rng *rand.Rand) ExerciseService {
	return &exerciseService{logs: logs, rng: rng}
}

func (s *exerciseService) Modules() []exercises.Module {
	return exercises.Modules
}

func (s *exerciseService) RandomExercise(moduleID string) (*exercises.Exercise, error) {
	module := exercises.FindModule(moduleID)
	if module == nil {
		return nil, fmt.Errorf("unknown exercise module %q", moduleID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return &module.Exercises[s.rng.Intn(len(module.Exercises))], nil
}

func (s *exerciseService) LogCompletion(ctx context.Context, moduleID, exerciseName string) (*domain.ExerciseLog, error) {
	module := exercises.FindModule(moduleID)
	if module == nil {
		return nil, fmt.Errorf("unknown exercise module %q", moduleID)
	}
	if module.FindExercise(exerciseName) == nil {
		return nil, fmt.Errorf("unknown exercise %q in module %q", exerciseName, moduleID)
	}

	log := &domain.ExerciseLog{
		ID:           uuid.New().String(),
		ModuleID:     moduleID,
		ExerciseName: exerciseName,
		CompletedAt:  time.Now().UTC(),
	}
	if err := s.logs.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *exerciseService) Progress(ctx context.Context, moduleID string) (*ModuleProgress, error) {
	if exercises.FindModule(moduleID) == nil {
		return nil, fmt.Errorf("unknown exercise module %q", moduleID)
	}
	logs, err := s.logs.ListByModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	progress := &ModuleProgress{ModuleID: moduleID, TotalCompleted: len(logs)}
	if len(logs) == 0 {
		return progress, nil
	}

	unique := map[string]bool{}
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	for _, l := range logs {
		unique[l.ExerciseName] = true
		if l.CompletedAt.After(weekAgo) {
			progress.RecentCount++
		}
	}
	progress.UniqueExercises = len(unique)

	// Logs come back newest first.
	last := logs[0].CompletedAt
	progress.LastSession = &last
	return progress, nil
}
