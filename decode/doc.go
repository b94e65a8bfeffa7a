// Package decode turns a BITS transmission into a packet tree.
//
// # Usage
//
//	data, err := hexbits.Decode("9C0141080250320F1802104A08")
//	if err != nil {
//	    return err
//	}
//	root, err := decode.Decode(data)
//
// # Wire format
//
// Every packet starts with a 3-bit version and a 3-bit type id. Type id 4
// is a literal: a run of 5-bit groups, each a continuation bit followed by
// a nibble of the value, most significant nibble first. Any other type id
// is an operator, followed by a 1-bit length type:
//
//   - 1: an 11-bit count of sub-packets follows.
//   - 0: a 15-bit length follows giving the total size in bits of the
//     sub-packets.
//
// Bits after the root packet are padding and are ignored unless
// ZeroPadding is given.
//
// # Errors
//
// Decoding stops at the first problem. The error is a *DecodeErr carrying
// the bit offset of the packet being decoded, and wraps one of the
// sentinels of this package or bitio.ErrOutOfBits.
package decode
