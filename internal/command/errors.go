package command

import "errors"

// Error kinds returned by Parse. Match them with errors.Is; the error text itself
// is the message shown to the user.
var (
	ErrUnknownCommand           = errors.New("unknown command")
	ErrMissingOrInvalidArgument = errors.New("missing or invalid argument")
	ErrTooManyArguments         = errors.New("too many arguments")
	ErrEmptyDescription         = errors.New("empty description")
	ErrMissingMarker            = errors.New("missing marker")
	ErrEmptyDate                = errors.New("empty date")
	ErrMissingArgument          = errors.New("missing argument")
	ErrInvalidNumber            = errors.New("invalid number")
	ErrMissingKeyword           = errors.New("missing keyword")
)

// UsageError pairs an error kind with a message naming the offending field.
type UsageError struct {
	Kind error
	Msg  string
}

func (e *UsageError) Error() string { return e.Msg }
func (e *UsageError) Unwrap() error { return e.Kind }

func usage(kind error, msg string) error {
	return &UsageError{Kind: kind, Msg: msg}
}
