// Package resource provides the fixed-arity counters used by the geode search:
// a resource Vector (ore, clay, obsidian, geode on hand) and a parallel Robots
// vector (robots owned per kind).
//
// What
//
//   - Kind enumerates the four resource kinds in production order.
//   - Vector is a value type: every operation returns a new Vector and never
//     mutates its receiver. Vectors are comparable and can key maps.
//   - Robots counts owned robots per kind. Each robot yields one unit of its
//     resource per tick, so Robots.Production converts a fleet into a Vector.
//
// Invariants
//
//   - No counter is ever negative. Sub refuses to produce a negative component
//     and reports ErrUnderflow instead of clamping: an underflow means an
//     unaffordable build was applied, which is a bug upstream.
//   - Add and Scale saturate at math.MaxInt rather than wrapping.
//
// Ordering
//
//	Compare orders vectors lexicographically from the most valuable kind down
//	(geode, obsidian, clay, ore). Search code relies on it as a total-order
//	tie-break, which keeps pruning deterministic.
//
// Errors
//
//   - ErrUnderflow       if Sub would drive any component below zero.
//   - ErrNegativeFactor  if Scale is called with a negative factor.
package resource
