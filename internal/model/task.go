package model

import (
	"errors"
	"time"
)

// Kind is the stable variant tag of a Task, used for listing filters and storage.
type Kind string

const (
	KindTodo     Kind = "T"
	KindDeadline Kind = "D"
	KindEvent    Kind = "E"
)

// ErrInvertedEventRange is returned when an event would start after it ends.
var ErrInvertedEventRange = errors.New("start date of \"event\" is after end date")

// Task is a single tracked item. Which time fields are meaningful depends on Kind:
// Deadline uses By, Event uses From and To, Todo uses neither.
type Task struct {
	kind        Kind
	description string
	done        bool
	by          time.Time
	from        time.Time
	to          time.Time
}

// NewTodo creates an undone Todo.
func NewTodo(description string) Task {
	return Task{kind: KindTodo, description: description}
}

// NewDeadline creates an undone Deadline due at by.
func NewDeadline(description string, by time.Time) Task {
	return Task{kind: KindDeadline, description: description, by: by}
}

// NewEvent creates an undone Event. from must not be after to.
func NewEvent(description string, from, to time.Time) (Task, error) {
	if from.After(to) {
		return Task{}, ErrInvertedEventRange
	}
	return Task{kind: KindEvent, description: description, from: from, to: to}, nil
}

func (t Task) Kind() Kind          { return t.kind }
func (t Task) Description() string { return t.description }
func (t Task) Done() bool          { return t.done }
func (t Task) By() time.Time       { return t.by }
func (t Task) From() time.Time     { return t.from }
func (t Task) To() time.Time       { return t.to }

// WithDone returns a copy of t with the done flag set to d.
func (t Task) WithDone(d bool) Task {
	t.done = d
	return t
}

// Equal reports whether t and o have the same variant, description, done flag and instants.
func (t Task) Equal(o Task) bool {
	return t.kind == o.kind &&
		t.description == o.description &&
		t.done == o.done &&
		t.by.Equal(o.by) &&
		t.from.Equal(o.from) &&
		t.to.Equal(o.to)
}

// DisplayTimeFormat is how resolved instants are shown to the user.
const DisplayTimeFormat = "Jan 2 2006 15:04"

// String renders the task as one listing line, e.g. "[D][X] return book (by: Dec 2 2023 18:00)".
func (t Task) String() string {
	mark := " "
	if t.done {
		mark = "X"
	}
	s := "[" + string(t.kind) + "][" + mark + "] " + t.description
	switch t.kind {
	case KindDeadline:
		s += " (by: " + t.by.Format(DisplayTimeFormat) + ")"
	case KindEvent:
		s += " (from: " + t.from.Format(DisplayTimeFormat) + " to: " + t.to.Format(DisplayTimeFormat) + ")"
	}
	return s
}

// ParseKind maps a tag string to a Kind. ok is false for unknown tags.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindTodo, KindDeadline, KindEvent:
		return Kind(s), true
	}
	return "", false
}
