package task

import (
	"errors"

	"task-tracker/internal/model"
)

// Domain-specific errors for the task package. Parser errors live in
// internal/command and position errors in internal/tasklist.
var (
	ErrDateResolution     = errors.New("is not in a valid date-time format")
	ErrInvertedEventRange = model.ErrInvertedEventRange
)
