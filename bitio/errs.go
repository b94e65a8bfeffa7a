package bitio

import "errors"

var (
	ErrOutOfBits = errors.New("out of bits")
	ErrBadWidth  = errors.New("bad read width")
	ErrBadOffset = errors.New("bad bit offset")
)
