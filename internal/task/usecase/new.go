package usecase

import (
	"sync"
	"time"

	"task-tracker/internal/task"
	"task-tracker/internal/task/presenter"
	"task-tracker/internal/task/repository"
	"task-tracker/internal/tasklist"
	"task-tracker/pkg/datemath"
	pkgLog "task-tracker/pkg/log"
)

// Config is the dependency bag passed to New.
type Config struct {
	Storage   repository.Storage
	Resolver  *datemath.Resolver
	Presenter presenter.Presenter

	// Optional calendar mirror. Location gives zone-less task instants a real
	// time zone when they are sent to the calendar; nil means UTC.
	Calendar   task.Calendar
	CalendarID string
	Location   *time.Location
}

type implUseCase struct {
	l        pkgLog.Logger
	storage  repository.Storage
	resolver *datemath.Resolver
	view     presenter.Presenter

	calendar   task.Calendar
	calendarID string
	location   *time.Location

	// mu serialises command cycles; list is only touched while it is held.
	mu   sync.Mutex
	list *tasklist.List
}

// New creates the command session. Call Start before the first Execute to load
// stored tasks; until then the collection is empty.
func New(l pkgLog.Logger, cfg Config) task.UseCase {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	resolver := cfg.Resolver
	if resolver == nil {
		resolver = datemath.NewResolver()
	}
	view := cfg.Presenter
	if view == nil {
		view = presenter.NewText("")
	}

	return &implUseCase{
		l:          l,
		storage:    cfg.Storage,
		resolver:   resolver,
		view:       view,
		calendar:   cfg.Calendar,
		calendarID: cfg.CalendarID,
		location:   loc,
		list:       tasklist.New(nil),
	}
}
