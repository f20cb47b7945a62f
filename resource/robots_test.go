package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/geodeforge/resource"
)

func TestRobots_Starting(t *testing.T) {
	r := resource.StartingRobots()
	assert.Equal(t, 1, r.Count(resource.Ore))
	assert.False(t, r.Has(resource.Clay))
	assert.Equal(t, resource.Of(1, 0, 0, 0), r.Production())
}

func TestRobots_AddAndProduction(t *testing.T) {
	r := resource.Robots{1, 3, 0, 0}.Add(resource.Single(resource.Obsidian))
	assert.Equal(t, resource.Robots{1, 3, 1, 0}, r)
	assert.Equal(t, resource.Of(1, 3, 1, 0), r.Production())
	assert.True(t, resource.Robots{}.IsZero())
	assert.False(t, r.IsZero())
}

func TestRobots_UsableAsMapKey(t *testing.T) {
	buckets := map[resource.Robots]int{}
	buckets[resource.Robots{1, 2, 0, 0}]++
	buckets[resource.StartingRobots().Add(resource.Robots{0, 2, 0, 0})]++
	assert.Len(t, buckets, 1)
	assert.Equal(t, 2, buckets[resource.Robots{1, 2, 0, 0}])
}

func TestRobots_String(t *testing.T) {
	assert.Equal(t, "none", resource.Robots{}.String())
	assert.Equal(t, "ore:1 clay:3", resource.Robots{1, 3, 0, 0}.String())
}
