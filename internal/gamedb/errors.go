package gamedb

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/gamedb/pkg/types"
)

// UserError is a command failure reported to the user. Kind is one of
// types.ErrNotFound, types.ErrDuplicate or types.ErrInvalid.
type UserError struct {
	Kind error
	Msg  string
}

func (e *UserError) Error() string { return e.Msg }

func (e *UserError) Unwrap() error { return e.Kind }

func notFound(format string, args ...any) error {
	return &UserError{Kind: types.ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

func invalid(format string, args ...any) error {
	return &UserError{Kind: types.ErrInvalid, Msg: fmt.Sprintf(format, args...)}
}

// duplicate turns a uniqueness violation from the store into a UserError.
// Other errors are returned unchanged.
func duplicate(err error, format string, args ...any) error {
	if errors.Is(err, types.ErrDuplicate) {
		return &UserError{Kind: types.ErrDuplicate, Msg: fmt.Sprintf(format, args...)}
	}
	return err
}
