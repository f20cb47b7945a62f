// Package blueprint holds robot cost tables and the parser for their textual form.
//
// A Blueprint maps every robot kind to the resource.Vector it costs, plus a
// numeric identifier used for scoring. Blueprints are immutable once parsed
// and are shared read-only by every search worker.
//
// Input format, one blueprint per line:
//
//	Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore.
//	Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.
//
// (shown wrapped here; in the input the whole sentence sits on one line).
//
// Parsing is all-or-nothing: a single non-matching line fails the whole input
// with ErrPattern and no partial list is returned. Blank lines are ignored.
//
// Errors
//
//   - ErrPattern      if a line does not match the blueprint sentence.
//   - ErrDuplicateID  if two lines carry the same identifier.
package blueprint
