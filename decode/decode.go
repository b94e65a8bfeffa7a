package decode

import (
	"fmt"

	"github.com/signadot/bits-format/bits/bitio"
	"github.com/signadot/bits-format/bits/debug"
	"github.com/signadot/bits-format/bits/packet"
)

const (
	versionBits    = 3
	typeIDBits     = 3
	groupBits      = 5
	countBits      = 11
	lengthBits     = 15
	groupMore      = 0x10
	groupNibble    = 0x0f
	literalMaxHigh = 60
)

// Decode decodes the packet at the start of d.
func Decode(d []byte, opts ...DecodeOption) (*packet.Packet, error) {
	return DecodeCursor(bitio.NewCursor(d), opts...)
}

// DecodeCursor decodes one packet starting at the current position of c,
// leaving c just past it (or past the padding with ZeroPadding).
func DecodeCursor(c *bitio.Cursor, opts ...DecodeOption) (*packet.Packet, error) {
	dOpts := &decodeOpts{}
	for _, f := range opts {
		f(dOpts)
	}
	dec := &decoder{c: c, opts: dOpts}
	res, err := dec.packet(1)
	if err != nil {
		return nil, err
	}
	if dOpts.zeroPadding {
		if err := dec.padding(); err != nil {
			return nil, err
		}
	}
	if debug.Decode() {
		debug.LogAny(res)
	}
	return res, nil
}

type decoder struct {
	c    *bitio.Cursor
	opts *decodeOpts
}

func (d *decoder) packet(depth int) (*packet.Packet, error) {
	start := d.c.Pos()
	if d.opts.maxDepth > 0 && depth > d.opts.maxDepth {
		return nil, errAt(fmt.Errorf("%w: %d", ErrMaxDepth, d.opts.maxDepth), start)
	}
	version, err := d.c.Read(versionBits)
	if err != nil {
		return nil, errAt(err, start)
	}
	typeID, err := d.c.Read(typeIDBits)
	if err != nil {
		return nil, errAt(err, start)
	}
	var res *packet.Packet
	if packet.TypeID(typeID) == packet.LiteralID {
		v, err := d.literal()
		if err != nil {
			return nil, errAt(err, start)
		}
		res = packet.Literal(uint8(version), v)
	} else {
		children, err := d.operands(depth)
		if err != nil {
			return nil, errAt(err, start)
		}
		res = packet.Operator(uint8(version), packet.TypeID(typeID), children...)
	}
	if d.opts.positions != nil {
		d.opts.positions[res] = Span{Start: start, End: d.c.Pos()}
	}
	if debug.Decode() {
		debug.Logf("decode %s v%d depth %d bits [%d,%d)\n", label(res), res.Version, depth, start, d.c.Pos())
	}
	return res, nil
}

func (d *decoder) literal() (uint64, error) {
	var v uint64
	for {
		g, err := d.c.Read(groupBits)
		if err != nil {
			return 0, err
		}
		if v>>literalMaxHigh != 0 {
			return 0, ErrLiteralOverflow
		}
		v = v<<4 | g&groupNibble
		if g&groupMore == 0 {
			return v, nil
		}
	}
}

func (d *decoder) operands(depth int) ([]*packet.Packet, error) {
	byCount, err := d.c.ReadBool()
	if err != nil {
		return nil, err
	}
	if byCount {
		n, err := d.c.Read(countBits)
		if err != nil {
			return nil, err
		}
		return d.children(depth, func(i int) bool {
			return i < int(n)
		})
	}
	n, err := d.c.Read(lengthBits)
	if err != nil {
		return nil, err
	}
	target := d.c.Pos() + int(n)
	if target > d.c.Len() {
		return nil, fmt.Errorf("%w: sub-packets need %d bits, %d remain", bitio.ErrOutOfBits, n, d.c.Remaining())
	}
	children, err := d.children(depth, func(int) bool {
		return d.c.Pos() < target
	})
	if err != nil {
		return nil, err
	}
	if d.c.Pos() != target {
		return nil, fmt.Errorf("%w: sub-packets end at bit %d, expected %d", ErrMismatchedSubpacketLength, d.c.Pos(), target)
	}
	return children, nil
}

// children decodes sub-packets while more reports true for the number
// decoded so far.
func (d *decoder) children(depth int, more func(n int) bool) ([]*packet.Packet, error) {
	var res []*packet.Packet
	for n := 0; more(n); n++ {
		p, err := d.packet(depth + 1)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

func (d *decoder) padding() error {
	for d.c.Remaining() > 0 {
		at := d.c.Pos()
		v, err := d.c.Read(min(d.c.Remaining(), bitio.MaxWidth))
		if err != nil {
			return err
		}
		if v != 0 {
			return &DecodeErr{Err: ErrTrailingData, Bit: at}
		}
	}
	return nil
}

func label(p *packet.Packet) string {
	if p.IsLiteral() {
		return fmt.Sprintf("literal %d", p.Value)
	}
	return fmt.Sprintf("%s/%d", p.TypeID, len(p.Children))
}
