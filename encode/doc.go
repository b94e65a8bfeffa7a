// Package encode renders packet trees as text.
//
// # Usage
//
//	// indented tree, one packet per line
//	err := encode.Encode(root, os.Stdout)
//
//	// JSON with bit spans and evaluated values
//	pos := map[*packet.Packet]decode.Span{}
//	root, _ := decode.Decode(data, decode.Positions(pos))
//	err := encode.Encode(root, w,
//	    encode.EncodeFormat(format.JSONFormat),
//	    encode.EncodePositions(pos),
//	    encode.EncodeValues(true))
//
// In the tree format literals print as their value and operators as their
// name, each followed by the packet version:
//
//	eq v4
//	  sum v2
//	    1 v2
//	    3 v4
//	  product v6
//	    2 v0
//	    2 v2
//
// # Related Packages
//
//   - github.com/signadot/bits-format/bits/packet - packet trees
//   - github.com/signadot/bits-format/bits/format - output formats
package encode
