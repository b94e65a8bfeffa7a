// Package packet provides the decoded representation of a BITS transmission.
//
// # Overview
//
// A transmission decodes to a tree of Packets. The tree works as a tagged
// union on Kind:
//
//   - LiteralKind: a leaf carrying Value, built from 4-bit groups.
//   - OperatorKind: carries TypeID and an ordered list of Children.
//
// Every packet carries a 3-bit Version.
//
// # Operator codes
//
// TypeID names the operator of an operator packet:
//
//   - Sum (0), Product (1), Minimum (2), Maximum (3)
//   - GreaterThan (5), LessThan (6), EqualTo (7)
//
// LiteralID (4) only appears on the wire. The decoder consumes it when it
// builds a literal, so an operator packet carrying it is malformed.
//
// # Immutability
//
// Trees produced by the decoder are never modified afterwards. Any number
// of goroutines may read the same tree without synchronization.
//
// # Related Packages
//
//   - github.com/signadot/bits-format/bits/decode - decodes bits to packets
//   - github.com/signadot/bits-format/bits/eval - evaluates packet trees
//   - github.com/signadot/bits-format/bits/encode - renders packet trees
package packet
