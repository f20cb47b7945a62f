package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	// DefaultTimeLimit is the number of ticks a Run advances when unset.
	DefaultTimeLimit = 24

	// DefaultBeamWidth is K, the states kept per robot fleet after each tick.
	DefaultBeamWidth = 10
)

// Option configures Run via functional arguments.
// If an Option is invalid (e.g. negative time limit), it will be recorded
// internally and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customise a Run.
type Options struct {
	// Ctx allows cancellation; it is checked once per tick.
	Ctx context.Context

	// TimeLimit is the number of ticks to advance. Zero is valid and returns
	// the starting state.
	TimeLimit int

	// BeamWidth is K per pruning bucket. 0 explicitly disables pruning.
	BeamWidth int

	// Workers bounds the expansion pool. 0 means runtime.GOMAXPROCS(0).
	Workers int

	// RobotCaps stops the generator from proposing ore, clay or obsidian
	// robots once the fleet already matches the blueprint's maximum spend.
	RobotCaps bool

	// UpperBound drops states whose optimistic geode bound cannot beat the
	// incumbent.
	UpperBound bool

	// OnTick is called after each tick with the pruned frontier size.
	OnTick func(tick, frontier int)

	// Logger receives one debug entry per tick.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - TimeLimit 24, BeamWidth 10
//   - Workers 0 (GOMAXPROCS)
//   - no robot caps, no upper-bound pruning
//   - no-op OnTick and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		TimeLimit: DefaultTimeLimit,
		BeamWidth: DefaultBeamWidth,
		Workers:   0,
		OnTick:    func(int, int) {},
		Logger:    zap.NewNop(),
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeLimit sets the number of ticks.
//
//	t >= 0: advance exactly t ticks
//	t < 0:  invalid option → ErrOptionViolation
func WithTimeLimit(t int) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%d)", ErrOptionViolation, t)
			return
		}
		o.TimeLimit = t
	}
}

// WithBeamWidth sets K, the states kept per robot fleet.
//
//	k > 0:  keep the top k per fleet
//	k == 0: explicit no pruning (deduplication still applies)
//	k < 0:  invalid option → ErrOptionViolation
func WithBeamWidth(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: BeamWidth cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.BeamWidth = k
	}
}

// WithWorkers bounds the number of goroutines expanding a frontier.
// 0 selects runtime.GOMAXPROCS(0); negative values are a violation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithRobotCaps toggles the per-kind robot cap in the generator.
func WithRobotCaps(on bool) Option {
	return func(o *Options) { o.RobotCaps = on }
}

// WithUpperBound toggles admissible upper-bound pruning.
func WithUpperBound(on bool) Option {
	return func(o *Options) { o.UpperBound = on }
}

// WithOnTick registers a progress callback.
func WithOnTick(fn func(tick, frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTick = fn
		}
	}
}

// WithLogger sets the logger used for per-tick debug output.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
