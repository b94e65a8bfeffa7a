package main

import (
	"fmt"
	"io"

	"github.com/signadot/bits-format/bits/eval"

	"github.com/scott-cotton/cli"
)

func bitsEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Ops {
		return writeOps(cc.Out)
	}
	ts, err := transmissions(cfg.MainConfig, cc.In, args, cfg.S)
	if err != nil {
		return err
	}
	return writeValues(cc.Out, ts)
}

func writeOps(w io.Writer) error {
	fmt.Fprintf(w, "available operators:\n")
	for _, op := range eval.Ops() {
		lo, hi := op.Arity()
		arity := fmt.Sprintf("%d..", lo)
		if hi >= 0 {
			arity = fmt.Sprintf("%d", hi)
		}
		if _, err := fmt.Fprintf(w, "\t- %d %s (%s operands)\n", uint8(op.TypeID()), op, arity); err != nil {
			return err
		}
	}
	return nil
}

func writeValues(w io.Writer, ts []transmission) error {
	for _, t := range ts {
		v, err := eval.Evaluate(t.Root)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", t.Name, err)
		}
		if _, err := fmt.Fprintf(w, "%d\n", v); err != nil {
			return err
		}
	}
	return nil
}
