package encode

import (
	"github.com/signadot/bits-format/bits/decode"
	"github.com/signadot/bits-format/bits/format"
	"github.com/signadot/bits-format/bits/packet"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodePositions annotates packets with their bit spans from m.
func EncodePositions(m map[*packet.Packet]decode.Span) EncodeOption {
	return func(es *EncState) { es.positions = m }
}

// EncodeValues annotates operators with their evaluated values. Operators
// which fail to evaluate are left unannotated.
func EncodeValues(v bool) EncodeOption {
	return func(es *EncState) { es.values = v }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
