package usecase

import (
	"context"
	"errors"

	"task-tracker/internal/task/repository"
	"task-tracker/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockStorage keeps lines in memory and counts saves.
type mockStorage struct {
	lines   []string
	missing bool
	saveErr error
	saves   int
}

func (m *mockStorage) Load(ctx context.Context) ([]string, error) {
	if m.missing {
		return nil, repository.ErrLoad
	}
	return append([]string(nil), m.lines...), nil
}

func (m *mockStorage) Save(ctx context.Context, lines []string) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.lines = append([]string(nil), lines...)
	return nil
}

type mockCalendar struct {
	requests []gcalendar.CreateEventRequest
	err      error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "evt-1", Summary: req.Summary, StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

var errDiskFull = errors.New("disk full")
