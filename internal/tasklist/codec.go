package tasklist

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"task-tracker/internal/model"
	"task-tracker/pkg/datemath"
)

// ErrCorruptLine is returned by Decode for a line it cannot read back.
var ErrCorruptLine = errors.New("corrupt task line")

// Lines look like:
//
//	T | 0 | read book
//	D | 1 | return book | 2023-12-02 1800
//	E | 0 | trip | 2024-01-01 0900 | 2024-01-02 1800
//
// Dates are taken from the right so descriptions may contain the separator.
// Line breaks and backslashes in descriptions are escaped so each task stays
// on one line.
const fieldSep = " | "

var descEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)

// Encode renders one storage line per task, preserving order.
func Encode(tasks []model.Task) []string {
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = EncodeTask(t)
	}
	return lines
}

// EncodeTask renders a single storage line.
func EncodeTask(t model.Task) string {
	done := "0"
	if t.Done() {
		done = "1"
	}
	parts := []string{string(t.Kind()), done, descEscaper.Replace(t.Description())}
	switch t.Kind() {
	case model.KindDeadline:
		parts = append(parts, t.By().Format(datemath.StorageLayout))
	case model.KindEvent:
		parts = append(parts, t.From().Format(datemath.StorageLayout), t.To().Format(datemath.StorageLayout))
	}
	return strings.Join(parts, fieldSep)
}

// Decode reads lines produced by Encode. Blank lines are skipped.
func Decode(lines []string) ([]model.Task, error) {
	tasks := make([]model.Task, 0, len(lines))
	for n, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := DecodeTask(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// DecodeTask reads a single storage line.
func DecodeTask(line string) (model.Task, error) {
	tag, rest, ok := strings.Cut(line, fieldSep)
	if !ok {
		return model.Task{}, fmt.Errorf("%w: %q", ErrCorruptLine, line)
	}
	kind, ok := model.ParseKind(tag)
	if !ok {
		return model.Task{}, fmt.Errorf("%w: unknown tag %q", ErrCorruptLine, tag)
	}
	flag, rest, ok := strings.Cut(rest, fieldSep)
	if !ok {
		return model.Task{}, fmt.Errorf("%w: %q", ErrCorruptLine, line)
	}
	var done bool
	switch flag {
	case "1":
		done = true
	case "0":
	default:
		return model.Task{}, fmt.Errorf("%w: bad done flag %q", ErrCorruptLine, flag)
	}

	var t model.Task
	switch kind {
	case model.KindTodo:
		t = model.NewTodo(unescapeDesc(rest))
	case model.KindDeadline:
		desc, by, err := cutTime(rest)
		if err != nil {
			return model.Task{}, err
		}
		t = model.NewDeadline(unescapeDesc(desc), by)
	case model.KindEvent:
		head, to, err := cutTime(rest)
		if err != nil {
			return model.Task{}, err
		}
		desc, from, err := cutTime(head)
		if err != nil {
			return model.Task{}, err
		}
		if t, err = model.NewEvent(unescapeDesc(desc), from, to); err != nil {
			return model.Task{}, fmt.Errorf("%w: %v", ErrCorruptLine, err)
		}
	}
	if t.Description() == "" {
		return model.Task{}, fmt.Errorf("%w: empty description", ErrCorruptLine)
	}
	return t.WithDone(done), nil
}

// cutTime splits "head | yyyy-MM-dd HHmm" at the last separator.
func cutTime(s string) (string, time.Time, error) {
	i := strings.LastIndex(s, fieldSep)
	if i < 0 {
		return "", time.Time{}, fmt.Errorf("%w: missing date in %q", ErrCorruptLine, s)
	}
	at, err := time.Parse(datemath.StorageLayout, s[i+len(fieldSep):])
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", ErrCorruptLine, err)
	}
	return s[:i], at, nil
}

// unescapeDesc reverses descEscaper. Unknown escapes are kept as written.
func unescapeDesc(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(s[i])
			continue
		}
		i++
	}
	return b.String()
}
