package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "bits").
		WithSynopsis("bits [opts] command [opts]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bitsMain(cfg, cc, args)
		}).
		WithSubs(
			SumCommand(cfg),
			EvalCommand(cfg),
			RunCommand(cfg),
			DumpCommand(cfg),
			ExprCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg))
}

const mainDescription = `bits decodes and evaluates BITS transmissions.

A transmission is given as hex text. Commands read transmissions from the
files named as arguments, one per non-blank line, or from stdin when no
files are given. With -s, arguments are transmissions themselves.`

func SumCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SumConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Sum, "sum").
		WithAliases("s", "versions").
		WithSynopsis("sum [files]").
		WithDescription("print the version sum of each transmission").
		WithRun(func(cc *cli.Context, args []string) error {
			return sum(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-ops] [files]").
		WithDescription("print the value of each transmission").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bitsEval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func RunCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RunConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Run, "run").
		WithAliases("r").
		WithSynopsis("run [files]").
		WithDescription("print the version sum and value of each transmission").
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "O",
		Aliases:     []string{"ofmt"},
		Description: "output format: tree/t, json/j, yaml/y",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(), "(format)"),
	})
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [-j|-y|-O fmt] [-pos] [-values] [files]").
		WithDescription("render the packet tree of each transmission").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func ExprCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExprConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Expr, "expr").
		WithAliases("x").
		WithSynopsis("expr [-check] [files]").
		WithDescription("print each transmission as an expr-lang expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return exprCmd(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("render the packet at path, such as $[0][1], in each transmission").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithSynopsis("diff a b").
		WithDescription("diff the packet trees of two transmissions").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
