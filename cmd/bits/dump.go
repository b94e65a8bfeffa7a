package main

import (
	"fmt"
	"io"

	"github.com/signadot/bits-format/bits/encode"
	"github.com/signadot/bits-format/bits/format"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	ts, err := transmissions(cfg.MainConfig, cc.In, args, cfg.S)
	if err != nil {
		return err
	}
	return writeDumps(cfg, cc.Out, ts)
}

func writeDumps(cfg *DumpConfig, w io.Writer, ts []transmission) error {
	fmat, err := cfg.outFormat()
	if err != nil {
		return err
	}
	for i, t := range ts {
		opts := []encode.EncodeOption{
			encode.EncodeFormat(fmat),
			encode.EncodeValues(cfg.Values),
		}
		if fmat.IsTree() {
			opts = append(opts, cfg.encOpts(w)...)
		}
		if cfg.Pos {
			opts = append(opts, encode.EncodePositions(t.Pos))
		}
		if err := encode.Encode(t.Root, w, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", t.Name, err)
		}
		if i < len(ts)-1 && fmat != format.JSONFormat {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
