package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/bits-format/bits/decode"
	"github.com/signadot/bits-format/bits/hexbits"
	"github.com/signadot/bits-format/bits/packet"

	"github.com/scott-cotton/cli"
)

// transmission is one decoded input. Name locates it for error messages.
type transmission struct {
	Name string
	Root *packet.Packet
	Pos  map[*packet.Packet]decode.Span
}

// transmissions decodes the inputs named by args: hex strings when hexArgs
// is set, otherwise files, with "-" or no args meaning in.
func transmissions(cfg *MainConfig, in io.Reader, args []string, hexArgs bool) ([]transmission, error) {
	var res []transmission
	if hexArgs {
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: -s given without transmissions", cli.ErrUsage)
		}
		for i, arg := range args {
			t, err := decodeHex(cfg, fmt.Sprintf("arg %d", i), arg)
			if err != nil {
				return nil, err
			}
			res = append(res, t)
		}
		return res, nil
	}
	if len(args) == 0 {
		return readTransmissions(cfg, "<stdin>", in)
	}
	for _, file := range args {
		ts, err := fileTransmissions(cfg, file, in)
		if err != nil {
			return nil, err
		}
		res = append(res, ts...)
	}
	return res, nil
}

func fileTransmissions(cfg *MainConfig, file string, in io.Reader) ([]transmission, error) {
	if file == "-" {
		return readTransmissions(cfg, "<stdin>", in)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	return readTransmissions(cfg, file, f)
}

func readTransmissions(cfg *MainConfig, name string, r io.Reader) ([]transmission, error) {
	lines, err := hexbits.ReadLines(r)
	if err != nil {
		var le *hexbits.LineErr
		if errors.As(err, &le) {
			return nil, fmt.Errorf("%s:%d: %w", name, le.N, le.Err)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	res := make([]transmission, 0, len(lines))
	for _, l := range lines {
		t, err := decodeBytes(cfg, fmt.Sprintf("%s:%d", name, l.N), l.Data)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

func decodeHex(cfg *MainConfig, name, text string) (transmission, error) {
	d, err := hexbits.Decode(text)
	if err != nil {
		return transmission{}, fmt.Errorf("%s: %w", name, err)
	}
	return decodeBytes(cfg, name, d)
}

func decodeBytes(cfg *MainConfig, name string, d []byte) (transmission, error) {
	pos := map[*packet.Packet]decode.Span{}
	opts := append(cfg.decodeOpts(), decode.Positions(pos))
	root, err := decode.Decode(d, opts...)
	if err != nil {
		return transmission{}, fmt.Errorf("error decoding %s: %w", name, err)
	}
	return transmission{Name: name, Root: root, Pos: pos}, nil
}
