package bitio

import (
	"fmt"

	"github.com/signadot/bits-format/bits/debug"
)

// MaxWidth is the widest single read a Cursor supports.
const MaxWidth = 64

type Cursor struct {
	data []byte
	pos  int
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// NewCursorAt returns a cursor positioned off bits into data.
func NewCursorAt(data []byte, off int) (*Cursor, error) {
	if off < 0 || off > len(data)*8 {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrBadOffset, off, len(data)*8)
	}
	return &Cursor{data: data, pos: off}, nil
}

// Pos is the offset in bits of the next unread bit.
func (c *Cursor) Pos() int { return c.pos }

// Len is the size of the underlying buffer in bits.
func (c *Cursor) Len() int { return len(c.data) * 8 }

func (c *Cursor) Remaining() int { return c.Len() - c.pos }

// Read returns the next n bits, most significant first, as an unsigned
// integer. On error the cursor does not move.
func (c *Cursor) Read(n int) (uint64, error) {
	if n < 1 || n > MaxWidth {
		return 0, fmt.Errorf("%w: %d", ErrBadWidth, n)
	}
	if n > c.Remaining() {
		return 0, fmt.Errorf("%w: want %d at bit %d, have %d", ErrOutOfBits, n, c.pos, c.Remaining())
	}
	start := c.pos
	var v uint64
	for n > 0 {
		avail := 8 - c.pos%8
		take := min(avail, n)
		b := uint64(c.data[c.pos/8]) >> (avail - take)
		b &= 1<<take - 1
		v = v<<take | b
		c.pos += take
		n -= take
	}
	if debug.Cursor() {
		debug.Logf("cursor read [%d,%d) = %#x\n", start, c.pos, v)
	}
	return v, nil
}

func (c *Cursor) ReadBool() (bool, error) {
	v, err := c.Read(1)
	if err != nil {
		return false, err
	}
	return v == 1, nil
}
