package booking

import (
	"errors"
	"fmt"
	"strings"
)

// ConflictError reports units that were booked out from under the user
// between their last availability check and confirmation. It is recoverable:
// the user re-selects units and confirms again.
type ConflictError struct {
	Units []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("units no longer available: %s", strings.Join(e.Units, ", "))
}

func NewConflictError(units []string) error {
	return &ConflictError{Units: units}
}

// AsConflict unwraps a ConflictError if err carries one.
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
