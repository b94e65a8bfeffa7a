// Package bitio provides a forward-only bit cursor over a byte buffer.
//
// Bits are addressed most significant first: bit 0 of a buffer is the high
// bit of its first byte. A Cursor hands out unsigned integers of 1 to 64
// bits, crossing byte boundaries as needed.
//
//	c := bitio.NewCursor([]byte{0xD2, 0xFE, 0x28})
//	version, _ := c.Read(3) // 6
//	typeID, _ := c.Read(3)  // 4
//
// A Cursor never moves backwards and never writes.
package bitio
