package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is the base sentinel for every local validation failure.
// The enumerated reasons below all wrap it, so errors.Is(err, ErrValidation)
// matches any of them.
var ErrValidation = errors.New("validation failed")

var (
	ErrEmptyFields   = fmt.Errorf("%w: all fields are required", ErrValidation)
	ErrInvalidEmail  = fmt.Errorf("%w: invalid email address", ErrValidation)
	ErrShortPassword = fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	ErrEmptyTitle    = fmt.Errorf("%w: note title is required", ErrValidation)
)
