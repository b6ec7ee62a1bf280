package presenter

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"task-tracker/internal/model"
	"task-tracker/internal/tasklist"
)

// Presenter renders the reply text for each command outcome.
type Presenter interface {
	Greeting() string
	Farewell() string
	LoadingError() string
	Added(t model.Task, size int) string
	Deleted(t model.Task, size int) string
	Marked(t model.Task) string
	Unmarked(t model.Task) string
	List(entries []tasklist.Entry) string
	Matches(entries []tasklist.Entry) string
	Error(err error) string
}

type text struct {
	botName string
}

// NewText returns the plain-text Presenter used by every delivery.
func NewText(botName string) Presenter {
	if botName == "" {
		botName = DefaultBotName
	}
	return text{botName: botName}
}

func (p text) Greeting() string {
	return fmt.Sprintf("Hello! I'm %s\nWhat can I do for you?", p.botName)
}

func (p text) Farewell() string {
	return "Bye. Hope to see you again soon!"
}

func (p text) LoadingError() string {
	return "I could not load your saved tasks, so we are starting with an empty list."
}

func (p text) Added(t model.Task, size int) string {
	return fmt.Sprintf("Got it. I've added this task:\n  %s\n%s", t, countLine(size))
}

func (p text) Deleted(t model.Task, size int) string {
	return fmt.Sprintf("Noted. I've removed this task:\n  %s\n%s", t, countLine(size))
}

func (p text) Marked(t model.Task) string {
	return fmt.Sprintf("Nice! I've marked this task as done:\n  %s", t)
}

func (p text) Unmarked(t model.Task) string {
	return fmt.Sprintf("OK, I've marked this task as not done yet:\n  %s", t)
}

func (p text) List(entries []tasklist.Entry) string {
	if len(entries) == 0 {
		return "There are no tasks in your list."
	}
	return "Here are the tasks in your list:\n" + numbered(entries)
}

func (p text) Matches(entries []tasklist.Entry) string {
	if len(entries) == 0 {
		return "There are no matching tasks in your list."
	}
	return "Here are the matching tasks in your list:\n" + numbered(entries)
}

// Error shows err's message with its first letter capitalised.
func (p text) Error(err error) string {
	msg := err.Error()
	if msg == "" {
		return "OOPS!!!"
	}
	r, n := utf8.DecodeRuneInString(msg)
	return "OOPS!!! " + string(unicode.ToUpper(r)) + msg[n:]
}

func numbered(entries []tasklist.Entry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%d.%s", e.Position, e.Task)
	}
	return strings.Join(lines, "\n")
}

func countLine(size int) string {
	if size == 1 {
		return "Now you have 1 task in the list."
	}
	return fmt.Sprintf("Now you have %d tasks in the list.", size)
}
