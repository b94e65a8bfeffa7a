package eval

import (
	"fmt"
	"slices"
	"sync"

	"github.com/signadot/bits-format/bits/packet"
)

var (
	mu sync.RWMutex
	d  = map[packet.TypeID]Op{}
)

// Register adds op to the registry. Only operator type ids (0-3, 5-7) can
// be registered, once each.
func Register(op Op) error {
	id := op.TypeID()
	if id == packet.LiteralID || id > packet.EqualTo {
		return fmt.Errorf("%w: %s cannot be registered for type %d", ErrInvalidTypeID, op, uint8(id))
	}
	mu.Lock()
	defer mu.Unlock()
	if prev, present := d[id]; present {
		return fmt.Errorf("%s (type %d, registered as %s): %w", op, uint8(id), prev, ErrOpExists)
	}
	d[id] = op
	return nil
}

func init() {
	for _, op := range []Op{Sum(), Product(), Minimum(), Maximum(), GreaterThan(), LessThan(), EqualTo()} {
		if err := Register(op); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the op registered for id, or nil.
func Lookup(id packet.TypeID) Op {
	mu.RLock()
	defer mu.RUnlock()
	return d[id]
}

// Ops returns the registered ops ordered by type id.
func Ops() []Op {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Op, 0, len(d))
	for _, op := range d {
		res = append(res, op)
	}
	slices.SortFunc(res, func(a, b Op) int {
		return int(a.TypeID()) - int(b.TypeID())
	})
	return res
}

func checkArity(op Op, n int) error {
	lo, hi := op.Arity()
	switch {
	case n < lo && lo == hi:
		return fmt.Errorf("%w: %s takes %d operands, got %d", ErrMissingOperand, op, lo, n)
	case n < lo:
		return fmt.Errorf("%w: %s takes at least %d operands, got %d", ErrMissingOperand, op, lo, n)
	case hi >= 0 && n > hi:
		return fmt.Errorf("%w: %s takes %d operands, got %d", ErrMissingOperand, op, hi, n)
	}
	return nil
}
