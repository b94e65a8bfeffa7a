package main

import (
	"fmt"
	"io"

	"github.com/signadot/bits-format/bits/eval"

	"github.com/scott-cotton/cli"
)

func sum(cfg *SumConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sum.Parse(cc, args)
	if err != nil {
		return err
	}
	ts, err := transmissions(cfg.MainConfig, cc.In, args, cfg.S)
	if err != nil {
		return err
	}
	return writeSums(cc.Out, ts)
}

func writeSums(w io.Writer, ts []transmission) error {
	for _, t := range ts {
		if _, err := fmt.Fprintf(w, "%d\n", eval.VersionSum(t.Root)); err != nil {
			return err
		}
	}
	return nil
}
