// Package hexbits converts the ASCII hex form of a BITS transmission to the
// raw bytes the decoder reads.
package hexbits

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrOddLength = errors.New("odd length hex")
	ErrBadHex    = errors.New("bad hex digit")
	ErrEmpty     = errors.New("empty transmission")
)

// Decode trims surrounding whitespace from s and decodes the remaining pairs
// of hex digits, most significant nibble first. Digits may be either case.
func Decode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %d digits", ErrOddLength, len(s))
	}
	res, err := hex.DecodeString(s)
	if err != nil {
		var ie hex.InvalidByteError
		if errors.As(err, &ie) {
			return nil, fmt.Errorf("%w: %q at %d", ErrBadHex, rune(ie), strings.IndexByte(s, byte(ie)))
		}
		return nil, fmt.Errorf("%w: %w", ErrBadHex, err)
	}
	return res, nil
}

// Line is one transmission of multi-line input. N is its 1-based line
// number.
type Line struct {
	N    int
	Data []byte
}

// LineErr locates a transmission that failed to decode.
type LineErr struct {
	N   int
	Err error
}

func (e *LineErr) Error() string {
	return fmt.Sprintf("line %d: %v", e.N, e.Err)
}

func (e *LineErr) Unwrap() error {
	return e.Err
}

// Lines decodes every non-blank line of text as its own transmission. Text
// with no transmissions is ErrEmpty.
func Lines(text string) ([]Line, error) {
	var res []Line
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		d, err := Decode(line)
		if err != nil {
			return nil, &LineErr{N: i + 1, Err: err}
		}
		res = append(res, Line{N: i + 1, Data: d})
	}
	if len(res) == 0 {
		return nil, ErrEmpty
	}
	return res, nil
}

func ReadLines(r io.Reader) ([]Line, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return Lines(string(d))
}
