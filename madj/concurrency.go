// File: concurrency.go
// Role: optional worker-pool sharding of the 2^n subset space
// (spec.md §5). Grounded on the errgroup.WithContext + SetLimit
// worker-pool idiom used by the pack's generic concurrent DAG
// executor (other_examples' pdag.go), adapted here to a fixed,
// precomputed shard range per worker rather than a live node-ready
// channel, since the subset space has no dependency edges to respect.

package madj

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// resultCollector serializes appends to the shared per-shard result
// slice from concurrent workers.
type resultCollector struct {
	mu sync.Mutex
}

func (r *resultCollector) add(results *[][]candidate, shard []candidate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*results = append(*results, shard)
}

// enumerateSerially walks every mask in [0, total) on the calling
// goroutine, checking ctx between candidates so a long enumeration
// remains cancellable even without concurrency.
func enumerateSerially(ctx context.Context, c *evalContext, total int64) ([]candidate, error) {
	out := make([]candidate, 0, total/4+1)
	for mask := int64(0); mask < total; mask++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		z, ok, err := c.evaluate(mask)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, candidate{mask: mask, set: z})
		}
	}

	return out, nil
}

// enumerateConcurrently shards [0, total) into contiguous ranges of
// total/workers masks each (rounded down, so there can be more ranges
// than workers) and evaluates them in parallel via errgroup, bounding
// active goroutines to workers with SetLimit. Each worker only ever reads c (never
// mutates it), so no additional synchronization is required; results
// are concatenated and the caller re-sorts by mask into canonical
// order.
func enumerateConcurrently(ctx context.Context, c *evalContext, total int64, workers int) ([]candidate, error) {
	if int64(workers) > total {
		workers = int(total)
	}
	if workers < 1 {
		workers = 1
	}

	shardSize := total / int64(workers)
	if shardSize == 0 {
		shardSize = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make([][]candidate, 0, workers)
	var mu resultCollector

	for start := int64(0); start < total; start += shardSize {
		start := start
		end := start + shardSize
		if end > total {
			end = total
		}
		g.Go(func() error {
			shard := make([]candidate, 0, shardSize/4+1)
			for mask := start; mask < end; mask++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				z, ok, err := c.evaluate(mask)
				if err != nil {
					return err
				}
				if ok {
					shard = append(shard, candidate{mask: mask, set: z})
				}
			}
			mu.add(&results, shard)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total2 := 0
	for _, r := range results {
		total2 += len(r)
	}
	out := make([]candidate, 0, total2)
	for _, r := range results {
		out = append(out, r...)
	}

	return out, nil
}
