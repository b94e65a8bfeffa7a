package decode

import "github.com/signadot/bits-format/bits/packet"

// Span is the half open bit range [Start, End) a packet occupies.
type Span struct {
	Start, End int
}

func (s Span) Len() int { return s.End - s.Start }

type decodeOpts struct {
	maxDepth    int
	zeroPadding bool
	positions   map[*packet.Packet]Span
}

type DecodeOption func(*decodeOpts)

// MaxDepth bounds packet nesting; the root is at depth 1. Zero means no
// limit.
func MaxDepth(n int) DecodeOption {
	return func(o *decodeOpts) { o.maxDepth = n }
}

// ZeroPadding requires every bit after the root packet to be zero.
func ZeroPadding() DecodeOption {
	return func(o *decodeOpts) { o.zeroPadding = true }
}

// Positions records the span of every decoded packet in m.
func Positions(m map[*packet.Packet]Span) DecodeOption {
	return func(o *decodeOpts) { o.positions = m }
}
