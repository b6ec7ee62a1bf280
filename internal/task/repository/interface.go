package repository

import (
	"context"
	"errors"
)

// ErrLoad is returned by Load when stored tasks are missing or unreadable.
var ErrLoad = errors.New("failed to load tasks")

// Storage persists the task collection as one line of text per task.
//
//go:generate mockery --name Storage
type Storage interface {
	// Load returns the stored lines in order. A missing or unreadable store fails with ErrLoad.
	Load(ctx context.Context) ([]string, error)
	// Save replaces the stored lines with lines.
	Save(ctx context.Context, lines []string) error
}
