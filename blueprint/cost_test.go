package blueprint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/geodeforge/blueprint"
	"github.com/katalvlaran/geodeforge/resource"
)

func TestBuildCost(t *testing.T) {
	bp := blueprint.New(1, 4, 2, 3, 14, 2, 7)

	assert.True(t, bp.BuildCost(resource.Robots{}).IsZero(), "build nothing is free")
	assert.Equal(t, resource.Of(3, 14, 0, 0), bp.BuildCost(resource.Single(resource.Obsidian)))
	assert.Equal(t, resource.Of(5, 14, 0, 0),
		bp.BuildCost(resource.Robots{0, 1, 1, 0}), "costs of a combination add up")
	assert.Equal(t, resource.Of(4, 0, 14, 0),
		bp.BuildCost(resource.Robots{0, 0, 0, 2}), "multiplicity counts")
}

func TestMaxSpend(t *testing.T) {
	bp := blueprint.New(1, 4, 2, 3, 14, 2, 7)
	assert.Equal(t, 4, bp.MaxSpend(resource.Ore))
	assert.Equal(t, 14, bp.MaxSpend(resource.Clay))
	assert.Equal(t, 7, bp.MaxSpend(resource.Obsidian))
	assert.Equal(t, 0, bp.MaxSpend(resource.Geode))
}
