package verify

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/moneta-go/value"
	"github.com/moneta-go/value/deque"
)

// Run checks entries with up to workers concurrent hashes and returns the
// entries whose digest did not match, as ValueVerifyEntry items tagged with
// their path. The first I/O error cancels the remaining checks.
func Run(ctx context.Context, entries []*Entry, workers int) (*deque.Deque, error) {
	if workers < 1 {
		workers = 1
	}
	failed := deque.New(deque.WithThreadSafe())
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, e := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ok, err := e.Check()
			if err != nil {
				return err
			}
			if ok {
				return nil
			}
			return failed.Add(e.Path(), value.ValueVerifyEntry, e)
		})
	}
	if err := g.Wait(); err != nil {
		failed.Destroy()
		return nil, err
	}
	failed.Sort()
	return failed, nil
}
