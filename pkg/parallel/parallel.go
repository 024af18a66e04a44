// Package parallel runs independent reads concurrently and joins them.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pair runs fa and fb concurrently. It returns once both have finished.
// When either fails, the shared context is cancelled, the first error is
// returned and both results are discarded.
func Pair[A, B any](
	ctx context.Context,
	fa func(context.Context) (A, error),
	fb func(context.Context) (B, error),
) (A, B, error) {
	var (
		a A
		b B
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := fa(gctx)
		if err != nil {
			return err
		}
		a = v
		return nil
	})
	g.Go(func() error {
		v, err := fb(gctx)
		if err != nil {
			return err
		}
		b = v
		return nil
	})

	if err := g.Wait(); err != nil {
		var zeroA A
		var zeroB B
		return zeroA, zeroB, err
	}
	return a, b, nil
}

// All runs every fn concurrently and returns the first error, if any.
// Callers capture results in the closures.
func All(ctx context.Context, fns ...func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fn := range fns {
		g.Go(func() error {
			return fn(gctx)
		})
	}
	return g.Wait()
}
