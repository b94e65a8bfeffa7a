package main

import (
	"fmt"
	"io"

	"github.com/signadot/bits-format/bits/encode"
	"github.com/signadot/bits-format/bits/packet"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path", cli.ErrUsage)
	}
	path, err := packet.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	ts, err := transmissions(cfg.MainConfig, cc.In, args[1:], cfg.S)
	if err != nil {
		return err
	}
	return writeGets(cfg.MainConfig, cc.Out, ts, path)
}

func writeGets(cfg *MainConfig, w io.Writer, ts []transmission, path packet.Path) error {
	for _, t := range ts {
		p, err := t.Root.At(path)
		if err != nil {
			return fmt.Errorf("%s: %w", t.Name, err)
		}
		opts := append(cfg.encOpts(w), encode.EncodeValues(true), encode.EncodePositions(t.Pos))
		if err := encode.Encode(p, w, opts...); err != nil {
			return err
		}
	}
	return nil
}
