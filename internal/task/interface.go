package task

import (
	"context"

	"task-tracker/pkg/gcalendar"
)

// UseCase is the command session: it owns the task collection and applies one
// command line at a time.
type UseCase interface {
	// Start loads stored tasks. A failed load is recovered by starting empty.
	Start(ctx context.Context) StartOutput

	// Execute parses and applies one command line, then saves the collection.
	// User mistakes are reported through ExecuteOutput, not the returned error.
	Execute(ctx context.Context, input ExecuteInput) (ExecuteOutput, error)

	// List returns the current tasks, optionally filtered by kind tag.
	List(ctx context.Context, input ListInput) (ListOutput, error)
}

// Calendar receives a copy of every deadline and event that is added.
// *gcalendar.Client satisfies it.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}
