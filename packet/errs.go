package packet

import "errors"

var (
	ErrBadPath = errors.New("bad path")
	ErrNoChild = errors.New("no such child")
)
