// Package tasklist holds the ordered task collection owned by a session.
// Positions are 1-based everywhere in this package's API.
package tasklist

import (
	"errors"
	"iter"
	"strings"

	"task-tracker/internal/model"
)

// ErrOutOfRange is returned for a position that does not name an existing task.
var ErrOutOfRange = errors.New("task number is out of range")

// List is an ordered, index-addressed task collection. Deleting a task renumbers
// every task after it. The zero value is an empty list ready to use.
type List struct {
	tasks []model.Task
}

// Entry is a task together with its current 1-based position.
type Entry struct {
	Position int
	Task     model.Task
}

// New returns a List holding tasks in the given order.
func New(tasks []model.Task) *List {
	return &List{tasks: append([]model.Task(nil), tasks...)}
}

// Len returns the number of tasks.
func (l *List) Len() int { return len(l.tasks) }

// All returns a copy of every task in order.
func (l *List) All() []model.Task {
	return append([]model.Task(nil), l.tasks...)
}

// Add appends t to the end of the list.
func (l *List) Add(t model.Task) {
	l.tasks = append(l.tasks, t)
}

// Get returns the task at position.
func (l *List) Get(position int) (model.Task, error) {
	i, err := l.index(position)
	if err != nil {
		return model.Task{}, err
	}
	return l.tasks[i], nil
}

// Delete removes and returns the task at position.
func (l *List) Delete(position int) (model.Task, error) {
	i, err := l.index(position)
	if err != nil {
		return model.Task{}, err
	}
	t := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return t, nil
}

// MarkDone flags the task at position as done and returns it. Marking a done task
// again is not an error.
func (l *List) MarkDone(position int) (model.Task, error) {
	return l.setDone(position, true)
}

// MarkUndone clears the done flag of the task at position and returns it.
func (l *List) MarkUndone(position int) (model.Task, error) {
	return l.setDone(position, false)
}

func (l *List) setDone(position int, done bool) (model.Task, error) {
	i, err := l.index(position)
	if err != nil {
		return model.Task{}, err
	}
	l.tasks[i] = l.tasks[i].WithDone(done)
	return l.tasks[i], nil
}

// Find yields (position, task) pairs whose description contains keyword, in list
// order. The match is case-sensitive and an empty keyword matches every task.
// Each call walks the list afresh.
func (l *List) Find(keyword string) iter.Seq2[int, model.Task] {
	return func(yield func(int, model.Task) bool) {
		for i, t := range l.tasks {
			if !strings.Contains(t.Description(), keyword) {
				continue
			}
			if !yield(i+1, t) {
				return
			}
		}
	}
}

// ListFiltered returns the tasks whose kind tag equals typeFilter, or every task
// when typeFilter is empty. A filter that is not a known tag matches nothing.
func (l *List) ListFiltered(typeFilter string) []Entry {
	out := make([]Entry, 0, len(l.tasks))
	for i, t := range l.tasks {
		if typeFilter != "" && string(t.Kind()) != typeFilter {
			continue
		}
		out = append(out, Entry{Position: i + 1, Task: t})
	}
	return out
}

// Collect drains a Find sequence into entries.
func Collect(seq iter.Seq2[int, model.Task]) []Entry {
	var out []Entry
	for pos, t := range seq {
		out = append(out, Entry{Position: pos, Task: t})
	}
	return out
}

func (l *List) index(position int) (int, error) {
	if position < 1 || position > len(l.tasks) {
		return 0, ErrOutOfRange
	}
	return position - 1, nil
}
