package resource

import (
	"fmt"
	"math"
	"strings"
)

// Vector holds one non-negative counter per Kind, indexed by Kind.
type Vector [Kinds]int

// Of builds a Vector from explicit counts in production order.
func Of(ore, clay, obsidian, geode int) Vector {
	return Vector{ore, clay, obsidian, geode}
}

// Unit returns a Vector with a single unit of k.
func Unit(k Kind) Vector {
	var v Vector
	v[k] = 1

	return v
}

// Get returns the counter for k.
func (v Vector) Get(k Kind) int { return v[k] }

// With returns a copy of v with the counter for k replaced by n.
func (v Vector) With(k Kind, n int) Vector {
	v[k] = n

	return v
}

// Add returns the component-wise sum, saturating at math.MaxInt.
func (v Vector) Add(o Vector) Vector {
	var out Vector
	for i := range v {
		out[i] = satAdd(v[i], o[i])
	}

	return out
}

// Sub returns v−o. If any component would go negative it returns the zero
// Vector and an error wrapping ErrUnderflow that names the offending kind.
func (v Vector) Sub(o Vector) (Vector, error) {
	var out Vector
	for i := range v {
		if v[i] < o[i] {
			return Vector{}, fmt.Errorf("%w: %s %d - %d", ErrUnderflow, Kind(i), v[i], o[i])
		}
		out[i] = v[i] - o[i]
	}

	return out, nil
}

// Scale returns v multiplied by k, saturating at math.MaxInt.
// k must be non-negative; otherwise ErrNegativeFactor is returned.
func (v Vector) Scale(k int) (Vector, error) {
	if k < 0 {
		return Vector{}, fmt.Errorf("%w: %d", ErrNegativeFactor, k)
	}
	var out Vector
	for i := range v {
		out[i] = satMul(v[i], k)
	}

	return out, nil
}

// Contains reports whether every component of v is ≥ the matching one in o.
// It is the affordability test: v.Contains(cost) means cost can be paid.
func (v Vector) Contains(o Vector) bool {
	for i := range v {
		if v[i] < o[i] {
			return false
		}
	}

	return true
}

// Total sums all components. It is a pruning heuristic, not a domain quantity.
func (v Vector) Total() int {
	t := 0
	for _, n := range v {
		t = satAdd(t, n)
	}

	return t
}

// IsZero reports whether every counter is zero.
func (v Vector) IsZero() bool { return v == Vector{} }

// Compare orders v and o lexicographically from Geode down to Ore.
// It returns -1, 0 or +1.
func (v Vector) Compare(o Vector) int {
	for i := Kinds - 1; i >= 0; i-- {
		switch {
		case v[i] < o[i]:
			return -1
		case v[i] > o[i]:
			return 1
		}
	}

	return 0
}

// String renders non-zero counters as "3 ore and 14 clay"; the zero Vector
// renders as "nothing".
func (v Vector) String() string {
	parts := make([]string, 0, Kinds)
	for i, n := range v {
		if n != 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, Kind(i)))
		}
	}
	if len(parts) == 0 {
		return "nothing"
	}

	return strings.Join(parts, " and ")
}

func satAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}

	return a + b
}

func satMul(a, k int) int {
	if a == 0 || k == 0 {
		return 0
	}
	if a > math.MaxInt/k {
		return math.MaxInt
	}

	return a * k
}
