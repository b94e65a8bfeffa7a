package main

import (
	"fmt"
	"io"

	"github.com/signadot/bits-format/bits/encode"
	"github.com/signadot/bits-format/bits/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly 2 arguments, got %d", cli.ErrUsage, len(args))
	}
	var ts []transmission
	for _, arg := range args {
		x, err := transmissions(cfg.MainConfig, cc.In, []string{arg}, cfg.S)
		if err != nil {
			return err
		}
		if len(x) != 1 {
			return fmt.Errorf("%w: %s holds %d transmissions, expected 1", cli.ErrUsage, arg, len(x))
		}
		ts = append(ts, x[0])
	}
	return writeDiff(cfg, cc.Out, ts[0], ts[1])
}

func writeDiff(cfg *DiffConfig, w io.Writer, from, to transmission) error {
	var fromOpts, toOpts []encode.EncodeOption
	if cfg.Pos {
		fromOpts = append(fromOpts, encode.EncodePositions(from.Pos))
		toOpts = append(toOpts, encode.EncodePositions(to.Pos))
	}
	d := libdiff.DiffText(
		encode.MustString(from.Root, fromOpts...)+"\n",
		encode.MustString(to.Root, toOpts...)+"\n")
	if d == "" {
		return nil
	}
	_, err := io.WriteString(w, d)
	return err
}
