package search

import (
	"fmt"

	"github.com/katalvlaran/geodeforge/blueprint"
	"github.com/katalvlaran/geodeforge/resource"
)

// Step applies one build order and advances one tick:
//  1. pay bp.BuildCost(order) out of the current resources,
//  2. collect one tick of production from the robots owned before the tick,
//  3. add the ordered robots to the fleet.
//
// The receiver is not modified. If the order is unaffordable the returned
// error wraps both ErrInvariant and resource.ErrUnderflow.
func (s State) Step(bp *blueprint.Blueprint, order resource.Robots) (State, error) {
	left, err := s.Resources.Sub(bp.BuildCost(order))
	if err != nil {
		return State{}, fmt.Errorf("%w: build %s at %s: %w", ErrInvariant, order, s, err)
	}

	return State{
		Robots:    s.Robots.Add(order),
		Resources: left.Add(s.Robots.Production()),
	}, nil
}

// Successors returns every state reachable from s in one tick.
func (s State) Successors(gen Generator) ([]State, error) {
	return s.appendSuccessors(nil, gen)
}

func (s State) appendSuccessors(dst []State, gen Generator) ([]State, error) {
	for _, order := range gen.Orders(s.Resources, s.Robots) {
		next, err := s.Step(gen.Blueprint, order)
		if err != nil {
			return dst, err
		}
		dst = append(dst, next)
	}

	return dst, nil
}

// Idle projects s forward by ticks without building anything.
func (s State) Idle(ticks int) (State, error) {
	gained, err := s.Robots.Production().Scale(ticks)
	if err != nil {
		return State{}, err
	}

	return State{Robots: s.Robots, Resources: s.Resources.Add(gained)}, nil
}

// geodeBound is an optimistic geode count for s with remaining ticks left:
// current geodes, plus what existing geode robots mine, plus one new geode
// robot started in every remaining tick. No schedule can beat it.
func geodeBound(s State, remaining int) int {
	g := s.Geodes() + s.Robots.Count(resource.Geode)*remaining
	if remaining > 1 {
		g += remaining * (remaining - 1) / 2
	}

	return g
}
