package http

import (
	"errors"
	"strings"

	"task-tracker/internal/command"
	"task-tracker/internal/model"
	"task-tracker/internal/task"
	"task-tracker/pkg/response"
)

var (
	errEmptyInput     = errors.New("input is required")
	errMultilineInput = errors.New("input must be a single line")
)

// --- Request DTOs ---

type executeReq struct {
	Input string `json:"input" example:"deadline return book /by 2/12/2023 1800"`
}

// validate rejects a blank or multi-line body field; otherwise the line is passed
// through untouched because the parser is whitespace-sensitive.
func (r executeReq) validate() error {
	if strings.TrimSpace(r.Input) == "" {
		return errEmptyInput
	}
	if strings.ContainsAny(r.Input, "\r\n") {
		return errMultilineInput
	}
	return nil
}

func (r executeReq) toInput() task.ExecuteInput {
	return task.ExecuteInput{Line: r.Input}
}

type listReq struct {
	Type string `form:"type"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Type: r.Type}
}

// --- Response DTOs ---

type executeResp struct {
	Reply   string       `json:"reply"`
	Exit    bool         `json:"exit"`
	Command command.Kind `json:"command,omitempty"`
	Failed  bool         `json:"failed"`
}

func newExecuteResp(out task.ExecuteOutput) executeResp {
	return executeResp{
		Reply:   out.Reply,
		Exit:    out.Exit,
		Command: out.Kind,
		Failed:  out.Err != nil,
	}
}

type taskResp struct {
	Position    int                `json:"position"`
	Type        string             `json:"type"`
	Description string             `json:"description"`
	Done        bool               `json:"done"`
	By          *response.DateTime `json:"by,omitempty"`
	From        *response.DateTime `json:"from,omitempty"`
	To          *response.DateTime `json:"to,omitempty"`
	Text        string             `json:"text"`
}

func newTaskResp(item task.TaskItem) taskResp {
	t := item.Task
	resp := taskResp{
		Position:    item.Position,
		Type:        string(t.Kind()),
		Description: t.Description(),
		Done:        t.Done(),
		Text:        t.String(),
	}
	switch t.Kind() {
	case model.KindDeadline:
		resp.By = response.NewDateTime(t.By())
	case model.KindEvent:
		resp.From = response.NewDateTime(t.From())
		resp.To = response.NewDateTime(t.To())
	}
	return resp
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, item := range out.Tasks {
		tasks[i] = newTaskResp(item)
	}
	return listResp{Tasks: tasks, Count: out.Count}
}
