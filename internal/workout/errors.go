package workout

import (
	"errors"
	"fmt"
)

// Structural and lifecycle errors. Operations that return one of these apply
// no partial mutation: the workout is unchanged on failure.
var (
	ErrExerciseNotFound  = errors.New("exercise not found in workout")
	ErrSetNotFound       = errors.New("set not found in exercise")
	ErrDuplicateOrder    = errors.New("exercise order already in use")
	ErrInvalidTransition = errors.New("invalid workout status transition")
)

// ValidationError reports a malformed input field detected at the aggregator
// boundary, before any stored state is touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
