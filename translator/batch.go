package translator

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TranslateBatch translates independent documents concurrently with at most
// parallel workers (0 means one per CPU). Results keep the input order.
func TranslateBatch(ctx context.Context, documents []string, parallel int) ([][]string, error) {
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}

	results := make([][]string, len(documents))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, doc := range documents {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = Translate(doc)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
