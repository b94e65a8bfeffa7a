package main

import (
	"fmt"
	"io"

	"github.com/signadot/bits-format/bits/eval"

	"github.com/scott-cotton/cli"
)

func exprCmd(cfg *ExprConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Expr.Parse(cc, args)
	if err != nil {
		return err
	}
	ts, err := transmissions(cfg.MainConfig, cc.In, args, cfg.S)
	if err != nil {
		return err
	}
	return writeExprs(cc.Out, ts, cfg.Check)
}

func writeExprs(w io.Writer, ts []transmission, check bool) error {
	for _, t := range ts {
		src, err := eval.Expr(t.Root)
		if err != nil {
			return fmt.Errorf("error rendering %s: %w", t.Name, err)
		}
		if !check {
			if _, err := fmt.Fprintln(w, src); err != nil {
				return err
			}
			continue
		}
		want, err := eval.Evaluate(t.Root)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", t.Name, err)
		}
		got, err := eval.EvalExpr(t.Root)
		if err != nil {
			return fmt.Errorf("error evaluating expr of %s: %w", t.Name, err)
		}
		if got != want {
			return fmt.Errorf("%s: expr %s = %d, evaluation gives %d", t.Name, src, got, want)
		}
		if _, err := fmt.Fprintf(w, "%s = %d\n", src, got); err != nil {
			return err
		}
	}
	return nil
}
