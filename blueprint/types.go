package blueprint

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/geodeforge/resource"
)

// Sentinel errors for blueprint parsing.
var (
	// ErrPattern is returned when an input line is not a blueprint sentence.
	ErrPattern = errors.New("blueprint: line does not match blueprint pattern")

	// ErrDuplicateID is returned when an identifier appears twice in one input.
	ErrDuplicateID = errors.New("blueprint: duplicate blueprint id")
)

// Blueprint is an immutable cost table: Costs[k] is what one robot of kind k costs.
type Blueprint struct {
	ID    int
	Costs [resource.Kinds]resource.Vector
}

// New builds a Blueprint from the four numbers a robot recipe can vary in.
func New(id, oreRobotOre, clayRobotOre, obsidianRobotOre, obsidianRobotClay, geodeRobotOre, geodeRobotObsidian int) Blueprint {
	return Blueprint{
		ID: id,
		Costs: [resource.Kinds]resource.Vector{
			resource.Ore:      resource.Of(oreRobotOre, 0, 0, 0),
			resource.Clay:     resource.Of(clayRobotOre, 0, 0, 0),
			resource.Obsidian: resource.Of(obsidianRobotOre, obsidianRobotClay, 0, 0),
			resource.Geode:    resource.Of(geodeRobotOre, 0, geodeRobotObsidian, 0),
		},
	}
}

// CostOf returns the cost of a single robot of kind k.
func (b *Blueprint) CostOf(k resource.Kind) resource.Vector {
	return b.Costs[k]
}

// BuildCost sums the cost of every robot in order, counting multiplicity.
// An empty order costs nothing.
func (b *Blueprint) BuildCost(order resource.Robots) resource.Vector {
	var total resource.Vector
	for _, k := range resource.All() {
		n := order.Count(k)
		if n <= 0 {
			continue
		}
		// n > 0, so Scale cannot fail.
		c, _ := b.Costs[k].Scale(n)
		total = total.Add(c)
	}

	return total
}

// MaxSpend is the largest amount of resource k that any single robot costs.
// Since at most one robot is started per tick, owning more than MaxSpend(k)
// robots of kind k can never speed anything up (geodes excepted).
func (b *Blueprint) MaxSpend(k resource.Kind) int {
	best := 0
	for _, c := range b.Costs {
		if n := c.Get(k); n > best {
			best = n
		}
	}

	return best
}

// String renders the blueprint in its canonical input sentence.
func (b *Blueprint) String() string {
	return fmt.Sprintf("Blueprint %d: Each ore robot costs %s. Each clay robot costs %s. "+
		"Each obsidian robot costs %s. Each geode robot costs %s.",
		b.ID,
		b.Costs[resource.Ore], b.Costs[resource.Clay],
		b.Costs[resource.Obsidian], b.Costs[resource.Geode])
}
