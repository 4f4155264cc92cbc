package domain

import "time"

// ExerciseLog records one completed run of a guided exercise.
type ExerciseLog struct {
	ID           string
	ModuleID     string
	ExerciseName string
	CompletedAt  time.Time
}
