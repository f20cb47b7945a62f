package search

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/geodeforge/blueprint"
)

// engine holds the policy and the mutable state of one Run.
// It is owned by a single goroutine; only Expand fans out.
type engine struct {
	gen     Generator
	opts    Options
	workers int

	frontier []State

	// incumbent: best state seen so far, projected to the time limit
	best      State
	bestFound bool

	stats Stats
}

// Run searches bp for the largest geode count reachable within the time limit,
// applying any number of functional Options.
// Returns ErrNilBlueprint or ErrOptionViolation for invalid input, an error
// wrapping ErrInvariant if a transition underflows, or the context error on
// cancellation.
func Run(bp *blueprint.Blueprint, opts ...Option) (*Result, error) {
	if bp == nil {
		return nil, ErrNilBlueprint
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	e := &engine{
		gen:      Generator{Blueprint: bp, CapRobots: o.RobotCaps},
		opts:     o,
		workers:  workers,
		frontier: []State{Start()},
	}
	if err := e.loop(); err != nil {
		return nil, err
	}

	return &Result{
		Best:   e.best,
		Geodes: e.best.Geodes(),
		Ticks:  o.TimeLimit,
		Stats:  e.stats,
	}, nil
}

// loop advances ticks 1..TimeLimit; there is no early exit.
func (e *engine) loop() error {
	if err := e.recordIncumbent(0); err != nil {
		return err
	}
	e.stats.PeakFrontier = len(e.frontier)

	for tick := 1; tick <= e.opts.TimeLimit; tick++ {
		if err := e.opts.Ctx.Err(); err != nil {
			return err
		}

		succ, err := Expand(e.opts.Ctx, e.frontier, e.gen, e.workers)
		if err != nil {
			return err
		}
		e.stats.Successors += len(succ)
		if e.opts.UpperBound {
			succ = e.boundPrune(succ, e.opts.TimeLimit-tick)
		}
		e.frontier = Prune(succ, e.opts.BeamWidth)

		e.stats.Retained += len(e.frontier)
		e.stats.PeakFrontier = max(e.stats.PeakFrontier, len(e.frontier))
		e.opts.Logger.Debug("tick",
			zap.Int("tick", tick),
			zap.Int("successors", len(succ)),
			zap.Int("frontier", len(e.frontier)))
		e.opts.OnTick(tick, len(e.frontier))

		if err := e.recordIncumbent(tick); err != nil {
			return err
		}
	}

	return nil
}

// recordIncumbent projects every frontier state to the time limit and keeps
// the best projection. Ties keep the earlier incumbent.
func (e *engine) recordIncumbent(tick int) error {
	remaining := e.opts.TimeLimit - tick
	for _, s := range e.frontier {
		p, err := s.Idle(remaining)
		if err != nil {
			return err
		}
		if !e.bestFound || better(p, e.best) {
			e.best = p
			e.bestFound = true
		}
	}

	return nil
}

// boundPrune filters out states that cannot finish above the incumbent.
// It filters in place.
func (e *engine) boundPrune(succ []State, remaining int) []State {
	floor := e.best.Geodes()
	kept := succ[:0]
	for _, s := range succ {
		if geodeBound(s, remaining) <= floor {
			e.stats.BoundPruned++
			continue
		}
		kept = append(kept, s)
	}

	return kept
}

// better ranks projections by resources (geode-first), then by fleet.
func better(a, b State) bool {
	if c := a.Resources.Compare(b.Resources); c != 0 {
		return c > 0
	}

	return a.Robots.Compare(b.Robots) > 0
}
