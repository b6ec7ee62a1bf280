package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse classifies a raw input line and extracts its arguments. It either returns a
// complete Command or an error; it never returns a partial Command.
func Parse(input string) (Command, error) {
	parts := tokenize(input)

	switch parts[0] {
	case KeywordBye:
		return Command{Kind: KindExit}, nil
	case KeywordList:
		return parseList(parts)
	case KeywordMark:
		return parsePosition(parts, KindMark, "marked done")
	case KeywordUnmark:
		return parsePosition(parts, KindUnmark, "marked undone")
	case KeywordTodo:
		return parseTodo(input)
	case KeywordDeadline:
		return parseDeadline(parts)
	case KeywordEvent:
		return parseEvent(parts)
	case KeywordDelete:
		return parseDelete(parts)
	case KeywordFind:
		return parseFind(input, parts)
	default:
		return Command{}, usage(ErrUnknownCommand, "unknown command")
	}
}

// tokenize splits on single spaces. Empty tokens between repeated spaces are kept,
// trailing empty tokens are dropped, and the result always has at least one element.
func tokenize(input string) []string {
	parts := strings.Split(input, " ")
	n := len(parts)
	for n > 1 && parts[n-1] == "" {
		n--
	}
	return parts[:n]
}

func parseList(parts []string) (Command, error) {
	if len(parts) > maxListTokens {
		return Command{}, usage(ErrTooManyArguments, fmt.Sprintf("%q command should not have more than %d arguments", KeywordList, maxListTokens))
	}
	if len(parts) == maxListTokens {
		return Command{Kind: KindListAll, Args: []string{parts[1]}}, nil
	}
	return Command{Kind: KindListAll}, nil
}

func parsePosition(parts []string, kind Kind, action string) (Command, error) {
	if len(parts) < 2 {
		return Command{}, usage(ErrMissingOrInvalidArgument, "please provide the task number to be "+action)
	}
	if _, err := strconv.Atoi(parts[1]); err != nil {
		return Command{}, usage(ErrMissingOrInvalidArgument, fmt.Sprintf("%q is not a task number", parts[1]))
	}
	return Command{Kind: kind, Args: []string{parts[1]}}, nil
}

func parseTodo(input string) (Command, error) {
	desc := freeText(input)
	if desc == "" {
		return Command{}, usage(ErrEmptyDescription, fmt.Sprintf("description of %q should not be empty", KeywordTodo))
	}
	return Command{Kind: KindAddTodo, Args: []string{desc}}, nil
}

func parseDeadline(parts []string) (Command, error) {
	by := indexOf(parts, MarkerBy)
	if by < 0 {
		return Command{}, usage(ErrMissingMarker, fmt.Sprintf("%s not found in %q command", MarkerBy, KeywordDeadline))
	}

	desc := join(parts, 1, by)
	due := join(parts, by+1, len(parts))

	if desc == "" {
		return Command{}, usage(ErrEmptyDescription, fmt.Sprintf("description of %q should not be empty", KeywordDeadline))
	}
	if due == "" {
		return Command{}, usage(ErrEmptyDate, fmt.Sprintf("due date of %q should not be empty", KeywordDeadline))
	}
	return Command{Kind: KindAddDeadline, Args: []string{desc, due}}, nil
}

func parseEvent(parts []string) (Command, error) {
	from, to := -1, -1
	for i, p := range parts {
		switch p {
		case MarkerFrom:
			from = i
		case MarkerTo:
			to = i
		}
	}

	if from < 0 {
		return Command{}, usage(ErrMissingMarker, fmt.Sprintf("%s not found in %q command", MarkerFrom, KeywordEvent))
	}
	if to < 0 {
		return Command{}, usage(ErrMissingMarker, fmt.Sprintf("%s not found in %q command", MarkerTo, KeywordEvent))
	}

	desc := join(parts, 1, from)
	start := join(parts, from+1, to)
	end := join(parts, to+1, len(parts))

	if desc == "" {
		return Command{}, usage(ErrEmptyDescription, fmt.Sprintf("description of %q should not be empty", KeywordEvent))
	}
	if start == "" {
		return Command{}, usage(ErrEmptyDate, fmt.Sprintf("start date of %q should not be empty", KeywordEvent))
	}
	if end == "" {
		return Command{}, usage(ErrEmptyDate, fmt.Sprintf("end date of %q should not be empty", KeywordEvent))
	}
	return Command{Kind: KindAddEvent, Args: []string{desc, start, end}}, nil
}

func parseDelete(parts []string) (Command, error) {
	if len(parts) < 2 {
		return Command{}, usage(ErrMissingArgument, fmt.Sprintf("task number should be included in %q command", KeywordDelete))
	}
	for _, c := range parts[1] {
		if c < '0' || c > '9' {
			return Command{}, usage(ErrInvalidNumber, "task number given is not a valid number")
		}
	}
	// Catches the empty token and values that overflow int.
	if _, err := strconv.Atoi(parts[1]); err != nil {
		return Command{}, usage(ErrInvalidNumber, "task number given is not a valid number")
	}
	return Command{Kind: KindDelete, Args: []string{parts[1]}}, nil
}

// parseFind validates on token count, not on the extracted keyword.
func parseFind(input string, parts []string) (Command, error) {
	if len(parts) < 2 {
		return Command{}, usage(ErrMissingKeyword, fmt.Sprintf("keyword should be included in %q command", KeywordFind))
	}
	return Command{Kind: KindFind, Args: []string{freeText(input)}}, nil
}

func freeText(input string) string {
	if len(input) <= freeTextPrefixLen {
		return ""
	}
	return input[freeTextPrefixLen:]
}

func indexOf(parts []string, marker string) int {
	for i, p := range parts {
		if p == marker {
			return i
		}
	}
	return -1
}

// join glues parts[lo:hi] with single spaces; an inverted range yields "".
func join(parts []string, lo, hi int) string {
	if lo >= hi {
		return ""
	}
	return strings.Join(parts[lo:hi], " ")
}
