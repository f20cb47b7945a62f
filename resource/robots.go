package resource

import (
	"fmt"
	"strings"
)

// Robots counts owned robots per Kind. It doubles as the pruning-bucket key
// in the search, so it must stay a comparable array type.
type Robots [Kinds]int

// StartingRobots is the canonical fleet at tick 0: a single ore robot.
func StartingRobots() Robots {
	return Robots{Ore: 1}
}

// Single returns a fleet of exactly one robot of kind k.
func Single(k Kind) Robots {
	var r Robots
	r[k] = 1

	return r
}

// Count returns the number of robots of kind k.
func (r Robots) Count(k Kind) int { return r[k] }

// Has reports whether at least one robot of kind k is present.
func (r Robots) Has(k Kind) bool { return r[k] > 0 }

// IsZero reports whether the fleet is empty. An empty build order means
// "build nothing this tick".
func (r Robots) IsZero() bool { return r == Robots{} }

// Add returns the combined fleet, saturating like Vector.Add.
func (r Robots) Add(o Robots) Robots {
	return Robots(Vector(r).Add(Vector(o)))
}

// Production is what the fleet mines in one tick.
func (r Robots) Production() Vector { return Vector(r) }

// Compare orders fleets the same way Vector.Compare orders resources.
func (r Robots) Compare(o Robots) int { return Vector(r).Compare(Vector(o)) }

// String renders the fleet as "ore:1 clay:3".
func (r Robots) String() string {
	var b strings.Builder
	for i, n := range r {
		if n == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s:%d", Kind(i), n)
	}
	if b.Len() == 0 {
		return "none"
	}

	return b.String()
}
