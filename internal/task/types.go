package task

import (
	"task-tracker/internal/command"
	"task-tracker/internal/model"
)

// ExecuteInput is one raw command line.
type ExecuteInput struct {
	Line string
}

// ExecuteOutput is the outcome of one command cycle.
type ExecuteOutput struct {
	Reply string       // Text to show the user: confirmation, listing or error message
	Exit  bool         // Set by "bye"; the caller should end the session
	Kind  command.Kind // Empty when the line did not parse
	Err   error        // The user error behind Reply, nil on success
}

// StartOutput describes how the session came up.
type StartOutput struct {
	Greeting   string
	TaskCount  int
	LoadFailed bool
}

// ListInput filters the structured listing by kind tag ("T", "D", "E"); empty means all.
type ListInput struct {
	Type string
}

// TaskItem is a task with its current 1-based position.
type TaskItem struct {
	Position int
	Task     model.Task
}

// ListOutput is the structured listing used by the JSON API.
type ListOutput struct {
	Tasks []TaskItem
	Count int
}
