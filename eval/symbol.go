package eval

import "github.com/signadot/bits-format/bits/packet"

// Op is the evaluation rule for one operator type id.
type Op interface {
	String() string
	TypeID() packet.TypeID
	// Arity bounds the number of operands; hi < 0 means unbounded.
	Arity() (lo, hi int)
	Apply(args []uint64) (uint64, error)
}

type name string

func (s name) String() string {
	return string(s)
}
