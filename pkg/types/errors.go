package types

import "errors"

// Domain errors. Commands that fail with one of these are reported to the
// user and the session continues; every other error is fatal.
var (
	ErrNotFound  = errors.New("entity not found")
	ErrDuplicate = errors.New("entity already exists")
	ErrInvalid   = errors.New("invalid request")
)

// IsUserError reports whether err is a recoverable domain error.
func IsUserError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrInvalid)
}
