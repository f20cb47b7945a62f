package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/geodeforge/resource"
)

// Sentinel errors for search execution.
var (
	// ErrNilBlueprint is returned when Run receives a nil blueprint.
	ErrNilBlueprint = errors.New("search: blueprint is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrInvariant is returned when a build order could not be paid for.
	// The generator guarantees affordability, so this is always a bug.
	ErrInvariant = errors.New("search: build order exceeds available resources")
)

// State is a factory snapshot at one tick.
type State struct {
	Robots    resource.Robots
	Resources resource.Vector
}

// Start is the canonical tick-0 state: one ore robot and empty pockets.
func Start() State {
	return State{Robots: resource.StartingRobots()}
}

// Geodes is a shorthand for the target-resource counter.
func (s State) Geodes() int { return s.Resources.Get(resource.Geode) }

// Compare orders states by fleet first, then by resources (both geode-first).
func (s State) Compare(o State) int {
	if c := s.Robots.Compare(o.Robots); c != 0 {
		return c
	}

	return s.Resources.Compare(o.Resources)
}

// String renders the state as "robots[ore:1 clay:3] resources[4 ore and 15 clay]".
func (s State) String() string {
	return fmt.Sprintf("robots[%s] resources[%s]", s.Robots, s.Resources)
}

// Stats summarises the work a Run performed.
type Stats struct {
	// Successors counts every generated successor, before dedup and pruning.
	Successors int
	// Retained counts states kept across all ticks after pruning.
	Retained int
	// BoundPruned counts successors dropped by the upper-bound test.
	BoundPruned int
	// PeakFrontier is the largest frontier held at the end of any tick.
	PeakFrontier int
}

// Result is the outcome of a Run.
type Result struct {
	// Best is the incumbent projected to the time limit.
	Best State
	// Geodes equals Best.Geodes(); the blueprint's answer.
	Geodes int
	// Ticks is the time limit the run advanced to.
	Ticks int
	// Stats describes the search effort.
	Stats Stats
}
