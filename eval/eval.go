package eval

import (
	"fmt"

	"github.com/signadot/bits-format/bits/debug"
	"github.com/signadot/bits-format/bits/packet"
)

// VersionSum is the sum of the versions of p and all its descendants.
func VersionSum(p *packet.Packet) uint64 {
	res := uint64(p.Version)
	for _, c := range p.Children {
		res += VersionSum(c)
	}
	return res
}

// Evaluate computes the value of the expression rooted at p. Operands are
// evaluated left to right.
func Evaluate(p *packet.Packet) (uint64, error) {
	return evaluate(p, packet.Path{})
}

func evaluate(p *packet.Packet, path packet.Path) (uint64, error) {
	if p.IsLiteral() {
		return p.Value, nil
	}
	op := Lookup(p.TypeID)
	if op == nil {
		return 0, errAt(fmt.Errorf("%w: %d", ErrInvalidTypeID, uint8(p.TypeID)), path)
	}
	if err := checkArity(op, len(p.Children)); err != nil {
		return 0, errAt(err, path)
	}
	args := make([]uint64, len(p.Children))
	for i, c := range p.Children {
		v, err := evaluate(c, path.Child(i))
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	res, err := op.Apply(args)
	if err != nil {
		return 0, errAt(err, path)
	}
	if debug.Eval() {
		debug.Logf("eval %s %s%v = %d\n", path, op, args, res)
	}
	return res, nil
}

// Values evaluates every packet under p in one bottom-up pass. A packet that
// fails to evaluate is absent, and so are its ancestors.
func Values(p *packet.Packet) map[*packet.Packet]uint64 {
	res := map[*packet.Packet]uint64{}
	values(p, res)
	return res
}

func values(p *packet.Packet, res map[*packet.Packet]uint64) bool {
	if p.IsLiteral() {
		res[p] = p.Value
		return true
	}
	ok := true
	args := make([]uint64, len(p.Children))
	for i, c := range p.Children {
		if !values(c, res) {
			ok = false
			continue
		}
		args[i] = res[c]
	}
	if !ok {
		return false
	}
	op := Lookup(p.TypeID)
	if op == nil || checkArity(op, len(args)) != nil {
		return false
	}
	v, err := op.Apply(args)
	if err != nil {
		return false
	}
	res[p] = v
	return true
}
