package eval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/bits-format/bits/debug"
	"github.com/signadot/bits-format/bits/packet"

	"github.com/expr-lang/expr"
)

// Expr renders the tree rooted at p in expr-lang syntax, for example
// "(1 + 3) == (2 * 2)" prints as "((1 + 3) == (2 * 2) ? 1 : 0)".
func Expr(p *packet.Packet) (string, error) {
	buf := &strings.Builder{}
	if err := writeExpr(buf, p, packet.Path{}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeExpr(buf *strings.Builder, p *packet.Packet, path packet.Path) error {
	if p.IsLiteral() {
		if p.Value > math.MaxInt64 {
			return errAt(fmt.Errorf("%w: %d", ErrExprRange, p.Value), path)
		}
		buf.WriteString(strconv.FormatUint(p.Value, 10))
		return nil
	}
	op := Lookup(p.TypeID)
	if op == nil {
		return errAt(fmt.Errorf("%w: %d", ErrInvalidTypeID, uint8(p.TypeID)), path)
	}
	if err := checkArity(op, len(p.Children)); err != nil {
		return errAt(err, path)
	}
	args := func(sep string) error {
		for i, c := range p.Children {
			if i != 0 {
				buf.WriteString(sep)
			}
			if err := writeExpr(buf, c, path.Child(i)); err != nil {
				return err
			}
		}
		return nil
	}
	switch p.TypeID {
	case packet.Sum, packet.Product:
		switch len(p.Children) {
		case 0:
			if p.TypeID == packet.Sum {
				buf.WriteString("0")
			} else {
				buf.WriteString("1")
			}
			return nil
		case 1:
			return args("")
		}
		sep := " + "
		if p.TypeID == packet.Product {
			sep = " * "
		}
		buf.WriteByte('(')
		if err := args(sep); err != nil {
			return err
		}
		buf.WriteByte(')')
	case packet.Minimum, packet.Maximum:
		if len(p.Children) == 1 {
			return args("")
		}
		buf.WriteString(op.String() + "(")
		if err := args(", "); err != nil {
			return err
		}
		buf.WriteByte(')')
	case packet.GreaterThan, packet.LessThan, packet.EqualTo:
		cmp := map[packet.TypeID]string{
			packet.GreaterThan: " > ",
			packet.LessThan:    " < ",
			packet.EqualTo:     " == ",
		}[p.TypeID]
		buf.WriteByte('(')
		if err := args(cmp); err != nil {
			return err
		}
		buf.WriteString(" ? 1 : 0)")
	default:
		return errAt(fmt.Errorf("%w: no expr form for %s", ErrInvalidTypeID, op), path)
	}
	return nil
}

// EvalExpr evaluates p by compiling Expr(p) with expr-lang. It agrees with
// Evaluate while every intermediate value fits in an int64.
func EvalExpr(p *packet.Packet) (uint64, error) {
	src, err := Expr(p)
	if err != nil {
		return 0, err
	}
	if debug.Expr() {
		debug.Logf("expr %s\n", src)
	}
	program, err := expr.Compile(src, expr.AsInt())
	if err != nil {
		return 0, fmt.Errorf("error compiling %q: %w", src, err)
	}
	out, err := expr.Run(program, nil)
	if err != nil {
		return 0, fmt.Errorf("error running %q: %w", src, err)
	}
	v, ok := out.(int)
	if !ok {
		return 0, fmt.Errorf("expr %q produced %T, expected int", src, out)
	}
	return uint64(v), nil
}
