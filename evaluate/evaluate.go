// Package evaluate runs the geode search over a list of blueprints and
// aggregates the per-blueprint answers into the two puzzle scores.
//
// Scores
//
//   - QualityLevel: Σ blueprint.ID × geodes over every evaluated blueprint.
//   - GeodeProduct: Π geodes over the evaluated blueprints. The evaluated set is
//     the first BlueprintLimit blueprints in input order, which is how callers
//     select the subset scored by product (e.g. 3 blueprints at 32 ticks).
//
// An empty input (or BlueprintLimit 0) is not an error: both scores are 0.
//
// Blueprints are independent, so BlueprintWorkers > 1 searches several at
// once. Results are always reported in input order.
package evaluate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/geodeforge/blueprint"
	"github.com/katalvlaran/geodeforge/search"
)

// ErrInvalidConfig is returned for negative limits or worker counts.
var ErrInvalidConfig = errors.New("evaluate: invalid config")

// Config selects how many blueprints to evaluate and how to search each.
type Config struct {
	// TimeLimit is forwarded to search.WithTimeLimit.
	TimeLimit int
	// BlueprintLimit caps how many blueprints are evaluated, in input order.
	BlueprintLimit int
	// BlueprintWorkers is how many blueprints are searched concurrently; 0 or 1 is sequential.
	BlueprintWorkers int
	// Search holds extra options applied to every run (beam width, workers, ...).
	Search []search.Option
}

// Result is the answer for one blueprint.
type Result struct {
	ID      int
	Geodes  int
	Quality int
	Elapsed time.Duration
	Search  *search.Result
}

// Report aggregates every evaluated blueprint.
type Report struct {
	Results      []Result
	QualityLevel int
	GeodeProduct int
}

// Run evaluates bps under cfg. The first search error aborts the whole run;
// an invariant violation in any blueprint is never skipped over.
func Run(ctx context.Context, bps []blueprint.Blueprint, cfg Config, log *zap.Logger) (*Report, error) {
	if cfg.TimeLimit < 0 || cfg.BlueprintLimit < 0 || cfg.BlueprintWorkers < 0 {
		return nil, fmt.Errorf("%w: time_limit=%d blueprint_limit=%d blueprint_workers=%d",
			ErrInvalidConfig, cfg.TimeLimit, cfg.BlueprintLimit, cfg.BlueprintWorkers)
	}
	if log == nil {
		log = zap.NewNop()
	}

	selected := bps[:min(cfg.BlueprintLimit, len(bps))]
	results := make([]Result, len(selected))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.BlueprintWorkers, 1))
	for i := range selected {
		i := i
		bp := &selected[i]
		g.Go(func() error {
			r, err := runOne(gctx, bp, cfg, log)
			if err != nil {
				return fmt.Errorf("blueprint %d: %w", bp.ID, err)
			}
			results[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return aggregate(results), nil
}

func runOne(ctx context.Context, bp *blueprint.Blueprint, cfg Config, log *zap.Logger) (Result, error) {
	bpLog := log.With(zap.Int("blueprint", bp.ID))
	opts := make([]search.Option, 0, len(cfg.Search)+3)
	opts = append(opts, cfg.Search...)
	opts = append(opts,
		search.WithContext(ctx),
		search.WithTimeLimit(cfg.TimeLimit),
		search.WithLogger(bpLog))

	start := time.Now()
	res, err := search.Run(bp, opts...)
	if err != nil {
		return Result{}, err
	}
	elapsed := time.Since(start)

	bpLog.Info("blueprint searched",
		zap.Int("geodes", res.Geodes),
		zap.Int("quality", bp.ID*res.Geodes),
		zap.Stringer("best", res.Best),
		zap.Int("peak_frontier", res.Stats.PeakFrontier),
		zap.Int("successors", res.Stats.Successors),
		zap.Duration("elapsed", elapsed))

	return Result{
		ID:      bp.ID,
		Geodes:  res.Geodes,
		Quality: bp.ID * res.Geodes,
		Elapsed: elapsed,
		Search:  res,
	}, nil
}

func aggregate(results []Result) *Report {
	rep := &Report{Results: results}
	if len(results) == 0 {
		return rep
	}
	rep.GeodeProduct = 1
	for _, r := range results {
		rep.QualityLevel += r.Quality
		rep.GeodeProduct = mulSat(rep.GeodeProduct, r.Geodes)
	}

	return rep
}

// mulSat multiplies non-negative counts, saturating at math.MaxInt.
func mulSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}

	return a * b
}
