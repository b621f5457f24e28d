// Package fanout runs independent calls in parallel with a concurrency cap
// and hands the outcomes back in input order.
package fanout

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Result is the outcome of one call. Err is set when the call failed or
// never started.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn once per item with at most limit calls in flight. A limit
// below one is treated as one. Items still waiting for a slot when ctx is
// done record ctx.Err() without calling fn; calls already running are left
// to observe ctx themselves.
func Run[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := semaphore.NewWeighted(int64(max(limit, 1)))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Go(func() {
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i].Err = err
				return
			}
			defer sem.Release(1)

			results[i].Value, results[i].Err = fn(ctx, item)
		})
	}
	wg.Wait()

	return results
}

// Values unwraps results. The first failure in input order wins, matching
// what a sequential loop over the same items would report.
func Values[R any](results []Result[R]) ([]R, error) {
	values := make([]R, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			return nil, r.Err
		}
		values = append(values, r.Value)
	}
	return values, nil
}
