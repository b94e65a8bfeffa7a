package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/bits-format/bits/decode"
	"github.com/signadot/bits-format/bits/encode"
	"github.com/signadot/bits-format/bits/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='render with color'"`
	S        bool `cli:"name=s desc='arguments are hex transmissions, not files'"`
	Z        bool `cli:"name=z desc='require zero bits after each root packet'"`
	MaxDepth int  `cli:"name=depth desc='maximum packet nesting, 0 for no limit'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) decodeOpts() []decode.DecodeOption {
	res := []decode.DecodeOption{decode.MaxDepth(cfg.MaxDepth)}
	if cfg.Z {
		res = append(res, decode.ZeroPadding())
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				// explicitly turned off
				return nil
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type SumConfig struct {
	*MainConfig

	Sum *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Ops bool `cli:"name=ops desc='show available operators'"`

	Eval *cli.Command
}

type RunConfig struct {
	*MainConfig

	Run *cli.Command
}

type DumpConfig struct {
	*MainConfig
	J      bool `cli:"name=j aliases=json desc='render as json'"`
	Y      bool `cli:"name=y aliases=yaml desc='render as yaml'"`
	Pos    bool `cli:"name=pos desc='show bit spans'"`
	Values bool `cli:"name=values desc='show operator values'"`

	OutFormat *format.Format

	Dump *cli.Command
}

func (cfg *DumpConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.OutFormat = &f
		return f, nil
	})
}

func (cfg *DumpConfig) outFormat() (format.Format, error) {
	if count(cfg.J, cfg.Y, cfg.OutFormat != nil) > 1 {
		return 0, fmt.Errorf("%w: must specify at most one of -j[son] -y[aml] -O", cli.ErrUsage)
	}
	switch {
	case cfg.J:
		return format.JSONFormat, nil
	case cfg.Y:
		return format.YAMLFormat, nil
	case cfg.OutFormat != nil:
		return *cfg.OutFormat, nil
	}
	return format.TreeFormat, nil
}

// count is the number of set flags.
func count(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

type ExprConfig struct {
	*MainConfig
	Check bool `cli:"name=check desc='cross check expr-lang evaluation'"`

	Expr *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Pos bool `cli:"name=pos desc='include bit spans in the diff'"`

	Diff *cli.Command
}
