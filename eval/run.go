package eval

import (
	"context"

	"github.com/signadot/bits-format/bits/packet"

	"golang.org/x/sync/errgroup"
)

type Result struct {
	VersionSum uint64
	Value      uint64
}

// Run computes the version sum and the value of p concurrently.
func Run(ctx context.Context, p *packet.Packet) (Result, error) {
	var res Result
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		res.VersionSum = VersionSum(p)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := Evaluate(p)
		if err != nil {
			return err
		}
		res.Value = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return res, nil
}
