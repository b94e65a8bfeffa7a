package eval

import "github.com/signadot/bits-format/bits/packet"

var (
	sumOp = &foldOp{name: "sum", id: packet.Sum, unit: 0,
		f: func(a, b uint64) uint64 { return a + b }}
	productOp = &foldOp{name: "product", id: packet.Product, unit: 1,
		f: func(a, b uint64) uint64 { return a * b }}
	minOp = &foldOp{name: "min", id: packet.Minimum, lo: 1,
		f: func(a, b uint64) uint64 { return min(a, b) }}
	maxOp = &foldOp{name: "max", id: packet.Maximum, lo: 1,
		f: func(a, b uint64) uint64 { return max(a, b) }}

	gtOp = &cmpOp{name: "gt", id: packet.GreaterThan,
		f: func(a, b uint64) bool { return a > b }}
	ltOp = &cmpOp{name: "lt", id: packet.LessThan,
		f: func(a, b uint64) bool { return a < b }}
	eqOp = &cmpOp{name: "eq", id: packet.EqualTo,
		f: func(a, b uint64) bool { return a == b }}
)

func Sum() Op         { return sumOp }
func Product() Op     { return productOp }
func Minimum() Op     { return minOp }
func Maximum() Op     { return maxOp }
func GreaterThan() Op { return gtOp }
func LessThan() Op    { return ltOp }
func EqualTo() Op     { return eqOp }

// foldOp combines any number of operands left to right, starting from unit
// when lo is 0 and from the first operand otherwise.
type foldOp struct {
	name
	id   packet.TypeID
	lo   int
	unit uint64
	f    func(a, b uint64) uint64
}

func (o *foldOp) TypeID() packet.TypeID { return o.id }

func (o *foldOp) Arity() (int, int) { return o.lo, -1 }

func (o *foldOp) Apply(args []uint64) (uint64, error) {
	if err := checkArity(o, len(args)); err != nil {
		return 0, err
	}
	acc := o.unit
	if o.lo > 0 {
		acc, args = args[0], args[1:]
	}
	for _, a := range args {
		acc = o.f(acc, a)
	}
	return acc, nil
}

type cmpOp struct {
	name
	id packet.TypeID
	f  func(a, b uint64) bool
}

func (o *cmpOp) TypeID() packet.TypeID { return o.id }

func (o *cmpOp) Arity() (int, int) { return 2, 2 }

func (o *cmpOp) Apply(args []uint64) (uint64, error) {
	if err := checkArity(o, len(args)); err != nil {
		return 0, err
	}
	if o.f(args[0], args[1]) {
		return 1, nil
	}
	return 0, nil
}
