// Package geodeforge plans robot factories that crack as many geodes as
// possible within a fixed number of minutes.
//
// What is geodeforge?
//
//	A blueprint lists what each of four robot kinds costs. Every minute the
//	factory may start at most one robot, and every robot already working
//	mines one unit of its resource. geodeforge searches the build orders for
//	each blueprint and reports how many geodes the best plan opens.
//
// Packages:
//
//	resource/   the four resource kinds, resource vectors and robot fleets
//	blueprint/  blueprint cost tables and the one-sentence-per-line parser
//	search/     the tick-by-tick beam search (parallel expansion, top-K per fleet)
//	evaluate/   runs the search over many blueprints; quality level and geode product
//	config/     YAML settings layered under command-line flags
//	logging/    zap logger construction (console on a terminal, JSON otherwise)
//	input/      embedded sample and puzzle texts, plain or zstd-compressed files
//	cmd/geodes  the command-line front end
//
// Quick example (the first sample blueprint, 24 minutes):
//
//	bp, _ := blueprint.ParseLine("Blueprint 1: Each ore robot costs 4 ore. ...")
//	res, _ := search.Run(&bp, search.WithTimeLimit(24))
//	fmt.Println(res.Geodes) // 9
//
// The search keeps only the best few states for every robot fleet each
// minute, so it is fast but not guaranteed optimal. search.WithBeamWidth(0)
// disables pruning and search.WithUpperBound adds an admissible geode bound.
package geodeforge
