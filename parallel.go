package gol10n

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ExpandAll expands many documents concurrently. Each expansion is
// independent and touches no shared mutable state, so the documents are
// fanned out across a bounded worker group. Results are returned in input
// order; the first failure cancels the remaining work.
func ExpandAll(ctx context.Context, e *Expander, docs []Document) ([]*ExpandResult, error) {
	return ExpandAllLimit(ctx, e, docs, runtime.GOMAXPROCS(0))
}

// ExpandAllLimit is ExpandAll with an explicit concurrency limit.
func ExpandAllLimit(ctx context.Context, e *Expander, docs []Document, limit int) ([]*ExpandResult, error) {
	if limit < 1 {
		limit = 1
	}

	results := make([]*ExpandResult, len(docs))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(limit)

	for i, doc := range docs {
		i, doc := i, doc
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := e.Expand(doc)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
