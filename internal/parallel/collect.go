package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Collect runs fn for every index in [0, n) with at most limit calls in
// flight and returns the results in index order.
//
// The first error cancels the context passed to the remaining calls; calls
// that have not started yet are skipped. On error the partial results are
// discarded and only the first error is returned.
//
// A limit of 0 or less means no limit.
func Collect[T any](n, limit int, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	out := make([]T, n)

	g, ctx := errgroup.WithContext(context.Background())
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := fn(ctx, i)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
