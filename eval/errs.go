package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/bits-format/bits/packet"
)

var (
	ErrInvalidTypeID  = errors.New("invalid type id")
	ErrMissingOperand = errors.New("missing operand")
	ErrOpExists       = errors.New("op exists")
	ErrExprRange      = errors.New("value out of expr range")
)

// EvalErr locates an evaluation failure in the tree.
type EvalErr struct {
	Path packet.Path
	Err  error
}

func (e *EvalErr) Unwrap() error {
	return e.Err
}

func (e *EvalErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Path)
}

func errAt(err error, path packet.Path) error {
	var ee *EvalErr
	if errors.As(err, &ee) {
		return err
	}
	return &EvalErr{Path: path, Err: err}
}
