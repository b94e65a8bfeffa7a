package decode

import (
	"errors"
	"fmt"
)

var (
	ErrDecode                    = errors.New("decode error")
	ErrMismatchedSubpacketLength = fmt.Errorf("%w: mismatched sub-packet length", ErrDecode)
	ErrLiteralOverflow           = fmt.Errorf("%w: literal exceeds 64 bits", ErrDecode)
	ErrMaxDepth                  = fmt.Errorf("%w: max depth exceeded", ErrDecode)
	ErrTrailingData              = fmt.Errorf("%w: non-zero trailing bits", ErrDecode)
)

// DecodeErr locates a decode failure. Bit is the offset of the start of the
// innermost packet being decoded.
type DecodeErr struct {
	Err error
	Bit int
}

func (e *DecodeErr) Unwrap() error {
	return e.Err
}

func (e *DecodeErr) Error() string {
	return fmt.Sprintf("%s (packet at bit %d)", e.Err.Error(), e.Bit)
}

func errAt(err error, bit int) error {
	var de *DecodeErr
	if errors.As(err, &de) {
		return err
	}
	return &DecodeErr{Err: err, Bit: bit}
}
