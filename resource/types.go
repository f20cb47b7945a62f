package resource

import "errors"

// Sentinel errors for vector arithmetic.
var (
	// ErrUnderflow is returned when a subtraction would make a counter negative.
	ErrUnderflow = errors.New("resource: arithmetic underflow")

	// ErrNegativeFactor is returned when Scale receives a factor below zero.
	ErrNegativeFactor = errors.New("resource: negative scale factor")
)

// Kind identifies one of the counted resources (and the robot that mines it).
type Kind int

const (
	// Ore is mined by ore robots and pays for every robot kind.
	Ore Kind = iota
	// Clay is mined by clay robots and pays for obsidian robots.
	Clay
	// Obsidian is mined by obsidian robots and pays for geode robots.
	Obsidian
	// Geode is the target resource.
	Geode
)

// Kinds is the number of resource kinds; vectors have exactly this arity.
const Kinds = 4

var kindNames = [Kinds]string{"ore", "clay", "obsidian", "geode"}

// All returns every Kind in production order (ore first).
func All() []Kind {
	return []Kind{Ore, Clay, Obsidian, Geode}
}

// String returns the lower-case name used in blueprint text.
func (k Kind) String() string {
	if k < 0 || int(k) >= Kinds {
		return "unknown"
	}

	return kindNames[k]
}

// ParseKind maps a lower-case resource name back to its Kind.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}

	return 0, false
}
