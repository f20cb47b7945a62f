package search

import (
	"github.com/katalvlaran/geodeforge/blueprint"
	"github.com/katalvlaran/geodeforge/resource"
)

// Generator enumerates the build orders available to a state.
// It reads the blueprint but never modifies it, so one Generator may be
// shared by every worker.
type Generator struct {
	Blueprint *blueprint.Blueprint

	// CapRobots skips non-geode robots once the fleet owns as many of that
	// kind as the blueprint can spend of its resource in one tick.
	CapRobots bool
}

// Orders returns "build nothing" followed by every single robot whose cost is
// covered by resources, most valuable kind first. Every returned order is
// affordable: resources.Contains(bp.BuildCost(order)) holds for each.
func (g Generator) Orders(resources resource.Vector, robots resource.Robots) []resource.Robots {
	out := make([]resource.Robots, 1, resource.Kinds+1)
	// out[0] is the empty order
	for k := resource.Geode; k >= resource.Ore; k-- {
		if g.CapRobots && k != resource.Geode && robots.Count(k) >= g.Blueprint.MaxSpend(k) {
			continue
		}
		if resources.Contains(g.Blueprint.CostOf(k)) {
			out = append(out, resource.Single(k))
		}
	}

	return out
}
