package filter

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds how many filters a batch evaluation runs
// at once.
const DefaultConcurrency = 4

// EvaluatorOption configures an evaluator.
type EvaluatorOption func(*Evaluator)

// WithConcurrency sets the number of filters evaluated concurrently
// in a batch.
func WithConcurrency(n int) EvaluatorOption {
	return func(e *Evaluator) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// Evaluator runs compiled filters over item lists.
type Evaluator struct {
	concurrency int
}

// NewEvaluator creates an evaluator.
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate returns the items matching the filter, preserving input
// order. It stops at the first evaluation error.
func (e *Evaluator) Evaluate(ctx context.Context, filter CompiledFilter, items []Item) ([]Item, error) {
	matches := make([]Item, 0, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ok, err := filter.Evaluate(item)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

// EvaluateBatch runs several named filters over the same items
// concurrently and returns the matches per filter name.
func (e *Evaluator) EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, items []Item) (map[string][]Item, error) {
	results := make(map[string][]Item, len(filters))
	if len(filters) == 0 {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	var mu sync.Mutex

	for name, filter := range filters {
		g.Go(func() error {
			matches, err := e.Evaluate(ctx, filter, items)
			if err != nil {
				return err
			}

			mu.Lock()
			results[name] = matches
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
