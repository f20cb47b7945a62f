package search

import (
	"cmp"
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/geodeforge/resource"
)

// chunksPerWorker splits a frontier finer than the pool size so that a slow
// chunk does not leave the other workers idle.
const chunksPerWorker = 4

// Expand computes the successors of every state in frontier using at most
// workers goroutines (minimum 1). Each chunk writes into its own slice; the
// slices are concatenated in chunk order after every goroutine has returned.
// The first transition error cancels the remaining chunks and is returned.
func Expand(ctx context.Context, frontier []State, gen Generator, workers int) ([]State, error) {
	if len(frontier) == 0 {
		return nil, nil
	}
	if workers < 1 {
		workers = 1
	}

	chunks := min(len(frontier), workers*chunksPerWorker)
	size := (len(frontier) + chunks - 1) / chunks
	parts := make([][]State, 0, chunks)
	for lo := 0; lo < len(frontier); lo += size {
		parts = append(parts, frontier[lo:min(lo+size, len(frontier))])
	}

	out := make([][]State, len(parts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, part := range parts {
		i, part := i, part
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			succ := make([]State, 0, len(part)*(resource.Kinds+1))
			var err error
			for _, s := range part {
				if succ, err = s.appendSuccessors(succ, gen); err != nil {
					return err
				}
			}
			out[i] = succ

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range out {
		total += len(p)
	}
	merged := make([]State, 0, total)
	for _, p := range out {
		merged = append(merged, p...)
	}

	return merged, nil
}

// Prune deduplicates successors, groups them by robot fleet and keeps at most
// width states per fleet, ranked by resource total (descending) with ties
// broken by resources compared geode-first (descending). width == 0 keeps
// every distinct state. The result is sorted by State.Compare.
func Prune(successors []State, width int) []State {
	seen := make(map[State]struct{}, len(successors))
	buckets := make(map[resource.Robots][]resource.Vector)
	for _, s := range successors {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		buckets[s.Robots] = append(buckets[s.Robots], s.Resources)
	}

	out := make([]State, 0, len(seen))
	for robots, group := range buckets {
		if width > 0 && len(group) > width {
			slices.SortFunc(group, rankOrder)
			group = group[:width]
		}
		for _, r := range group {
			out = append(out, State{Robots: robots, Resources: r})
		}
	}
	slices.SortFunc(out, State.Compare)

	return out
}

// rankOrder puts the richest resource vector first.
func rankOrder(a, b resource.Vector) int {
	if ta, tb := a.Total(), b.Total(); ta != tb {
		return cmp.Compare(tb, ta)
	}

	return b.Compare(a)
}
