package suffix

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched (via errors.Is) by every input error the
// index and its searchers report.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidBytesError reports a valid length outside [0, Cap].
type ValidBytesError struct {
	Valid int
	Cap   int
}

func (e *ValidBytesError) Error() string {
	return fmt.Sprintf("invalid argument: valid length %d outside buffer of %d bytes", e.Valid, e.Cap)
}

func (e *ValidBytesError) Is(target error) bool { return target == ErrInvalidArgument }
