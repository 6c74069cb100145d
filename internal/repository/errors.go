package repository

import (
	"errors"
	"fmt"
)

// NotFoundError reports that no row matched the requested identifier.
// An update on a record that was never persisted carries ID 0.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("job application not found with id: %d", e.ID)
}

// DecodeError reports a stored value that no longer conforms to the expected
// encoding. It means the row was modified out of band; the read of that row
// fails, no partial record is returned.
type DecodeError struct {
	Value string
	Cause error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid stored value %q: %v", e.Value, e.Cause)
	}
	return fmt.Sprintf("invalid stored value %q", e.Value)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
