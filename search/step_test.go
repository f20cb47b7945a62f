package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodeforge/resource"
	"github.com/katalvlaran/geodeforge/search"
)

func TestGenerator_Orders(t *testing.T) {
	bp := sampleBlueprints(t)[0]
	gen := search.Generator{Blueprint: &bp}
	none := resource.Robots{}

	cases := []struct {
		name string
		have resource.Vector
		want []resource.Robots
	}{
		{"broke", resource.Vector{}, []resource.Robots{none}},
		{"ore only", resource.Of(4, 0, 0, 0), []resource.Robots{
			none, resource.Single(resource.Clay), resource.Single(resource.Ore),
		}},
		{"obsidian affordable", resource.Of(8, 14, 0, 0), []resource.Robots{
			none, resource.Single(resource.Obsidian), resource.Single(resource.Clay), resource.Single(resource.Ore),
		}},
		{"ore short for ore robot", resource.Of(3, 15, 0, 0), []resource.Robots{
			none, resource.Single(resource.Obsidian), resource.Single(resource.Clay),
		}},
		{"everything", resource.Of(4, 15, 7, 0), []resource.Robots{
			none,
			resource.Single(resource.Geode), resource.Single(resource.Obsidian),
			resource.Single(resource.Clay), resource.Single(resource.Ore),
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := gen.Orders(c.have, resource.StartingRobots())
			assert.Equal(t, c.want, got)
			for _, o := range got {
				assert.True(t, c.have.Contains(bp.BuildCost(o)), "unaffordable order %v", o)
			}
		})
	}
}

func TestGenerator_RobotCaps(t *testing.T) {
	bp := sampleBlueprints(t)[0] // max spend: ore 4, clay 14, obsidian 7
	gen := search.Generator{Blueprint: &bp, CapRobots: true}
	rich := resource.Of(100, 100, 100, 0)

	capped := resource.Robots{4, 14, 7, 3}
	assert.Equal(t,
		[]resource.Robots{{}, resource.Single(resource.Geode)},
		gen.Orders(rich, capped))

	open := resource.Robots{3, 13, 6, 0}
	assert.Len(t, gen.Orders(rich, open), 5)
}

func TestStep_ProductionBeforeNewRobot(t *testing.T) {
	bp := sampleBlueprints(t)[0]
	s := search.State{
		Robots:    resource.Robots{1, 3, 0, 0},
		Resources: resource.Of(4, 15, 0, 0),
	}

	next, err := s.Step(&bp, resource.Single(resource.Obsidian))
	require.NoError(t, err)
	assert.Equal(t, search.State{
		Robots:    resource.Robots{1, 3, 1, 0},
		Resources: resource.Of(2, 4, 0, 0),
	}, next)
	// input unchanged
	assert.Equal(t, resource.Of(4, 15, 0, 0), s.Resources)

	idle, err := s.Step(&bp, resource.Robots{})
	require.NoError(t, err)
	assert.Equal(t, resource.Of(5, 18, 0, 0), idle.Resources)
	assert.Equal(t, s.Robots, idle.Robots)
}

func TestStep_UnaffordableIsInvariantViolation(t *testing.T) {
	bp := sampleBlueprints(t)[0]
	_, err := search.Start().Step(&bp, resource.Single(resource.Geode))
	require.ErrorIs(t, err, search.ErrInvariant)
	assert.ErrorIs(t, err, resource.ErrUnderflow)
}

func TestState_Idle(t *testing.T) {
	s := search.State{Robots: resource.Robots{1, 2, 0, 1}, Resources: resource.Of(0, 1, 0, 3)}
	p, err := s.Idle(5)
	require.NoError(t, err)
	assert.Equal(t, resource.Of(5, 11, 0, 8), p.Resources)
	assert.Equal(t, s.Robots, p.Robots)
	assert.Equal(t, 8, p.Geodes())

	_, err = s.Idle(-1)
	assert.ErrorIs(t, err, resource.ErrNegativeFactor)
}

// TestTrace_CheapestBuildPath walks the unpruned search from the starting
// state and checks the documented build path is reachable at every tick.
func TestTrace_CheapestBuildPath(t *testing.T) {
	bp := sampleBlueprints(t)[0]
	gen := search.Generator{Blueprint: &bp}
	st := func(robots resource.Robots, res resource.Vector) search.State {
		return search.State{Robots: robots, Resources: res}
	}
	path := []search.State{
		search.Start(),
		st(resource.Robots{1, 0, 0, 0}, resource.Of(1, 0, 0, 0)),
		st(resource.Robots{1, 0, 0, 0}, resource.Of(2, 0, 0, 0)),
		st(resource.Robots{1, 1, 0, 0}, resource.Of(1, 0, 0, 0)),
		st(resource.Robots{1, 1, 0, 0}, resource.Of(2, 1, 0, 0)),
		st(resource.Robots{1, 2, 0, 0}, resource.Of(1, 2, 0, 0)),
		st(resource.Robots{1, 2, 0, 0}, resource.Of(2, 4, 0, 0)),
		st(resource.Robots{1, 3, 0, 0}, resource.Of(1, 6, 0, 0)),
		st(resource.Robots{1, 3, 0, 0}, resource.Of(2, 9, 0, 0)),
		st(resource.Robots{1, 3, 0, 0}, resource.Of(3, 12, 0, 0)),
		st(resource.Robots{1, 3, 0, 0}, resource.Of(4, 15, 0, 0)),
		st(resource.Robots{1, 3, 1, 0}, resource.Of(2, 4, 0, 0)),
	}

	frontier := []search.State{search.Start()}
	for tick, want := range path {
		assert.Contains(t, frontier, want, "tick %d", tick)
		succ, err := search.Expand(context.Background(), frontier, gen, 4)
		require.NoError(t, err)
		frontier = search.Prune(succ, 0)
	}
}

// TestAffordability_EveryTick checks every order the generator proposes
// along a pruned 24-tick run is payable from the state it is proposed for.
func TestAffordability_EveryTick(t *testing.T) {
	for _, bp := range sampleBlueprints(t) {
		for _, capRobots := range []bool{false, true} {
			gen := search.Generator{Blueprint: &bp, CapRobots: capRobots}
			frontier := []search.State{search.Start()}
			for tick := 1; tick <= 24; tick++ {
				for _, s := range frontier {
					for _, o := range gen.Orders(s.Resources, s.Robots) {
						require.True(t, s.Resources.Contains(bp.BuildCost(o)),
							"blueprint %d tick %d: %v cannot pay for %v", bp.ID, tick, s, o)
					}
				}
				succ, err := search.Expand(context.Background(), frontier, gen, 2)
				require.NoError(t, err)
				frontier = search.Prune(succ, search.DefaultBeamWidth)
			}
		}
	}
}
