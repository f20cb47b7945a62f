// Package search finds how many geodes a blueprint can crack within a fixed
// number of ticks, using a level-synchronous beam search over factory states.
//
// What
//
//   - A State is the pair (robots owned, resources on hand) at some tick.
//     States are plain values; transitions allocate new ones and never mutate.
//   - Each tick a Generator lists the legal build orders for a state
//     ("build nothing" plus every affordable single robot) and Step applies one:
//     pay the cost, collect production from the robots owned before the tick,
//     then add the new robot. A robot never produces in the tick it is queued.
//   - Expand fans the whole frontier out across a worker pool and joins before
//     Prune groups the successors by robot fleet and keeps the K richest states
//     (by resource total) per fleet.
//   - Run drives the ticks 1..TimeLimit and tracks an incumbent: the best state
//     seen so far, projected to the time limit by idling.
//
// Why beam pruning
//
//	The reachable state set grows exponentially with time. Keeping only the top
//	K states per robot fleet bounds both memory and per-tick work to
//	O(fleets·K). The ranking is a heuristic, not an admissible bound: a state
//	that deliberately saved resources may be discarded even though it would have
//	won. K is therefore an explicit accuracy/speed knob (WithBeamWidth), and
//	WithUpperBound adds a provably safe cut on top of it.
//
// Determinism
//
//	Successors are deduplicated, buckets are keyed by the fleet, and ranking
//	uses a total order (resource total, then resources compared geode-first).
//	The frontier is sorted after every tick, so results do not depend on the
//	worker count or on goroutine scheduling.
//
// Monotonicity
//
//	The frontier at tick t does not depend on the time limit, and every
//	incumbent projection is reachable by idling. Raising the time limit can
//	therefore never lower the answer.
//
// Complexity (F = frontier size, T = time limit)
//
//   - Time:   O(T · F · log F) for expansion, dedup and bucket sorting.
//   - Memory: O(F) live states; at most fleets·K after each prune.
//
// Usage
//
//	res, err := search.Run(&bp,
//	    search.WithTimeLimit(32),
//	    search.WithBeamWidth(10),
//	    search.WithWorkers(8),
//	    search.WithOnTick(func(tick, frontier int) { /* ... */ }),
//	)
//	if err != nil {
//	    // ErrNilBlueprint, ErrOptionViolation, ErrInvariant or ctx.Err()
//	}
//	fmt.Println(res.Geodes)
//
// Errors
//
//   - ErrNilBlueprint     if bp is nil.
//   - ErrOptionViolation  if an Option carries an invalid value.
//   - ErrInvariant        if a transition tried to spend resources it did not
//     have. It wraps resource.ErrUnderflow and means the generator and the
//     transition disagree; the run stops at once.
//   - The context error if the run was cancelled between ticks.
package search
