package main

import (
	"context"
	"fmt"
	"io"

	"github.com/signadot/bits-format/bits/eval"

	"github.com/scott-cotton/cli"
)

func run(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		return err
	}
	ts, err := transmissions(cfg.MainConfig, cc.In, args, cfg.S)
	if err != nil {
		return err
	}
	return writeResults(context.Background(), cc.Out, ts)
}

func writeResults(ctx context.Context, w io.Writer, ts []transmission) error {
	for _, t := range ts {
		res, err := eval.Run(ctx, t.Root)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", t.Name, err)
		}
		if _, err := fmt.Fprintf(w, "sum=%d value=%d\n", res.VersionSum, res.Value); err != nil {
			return err
		}
	}
	return nil
}
