package gridworld

import (
	"math/rand"
	"testing"

	"github.com/gridforge/labyrinth-api/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterScanPlacer(t *testing.T) {
	m, err := maze.New(11, 11, rand.New(rand.NewSource(21)))
	require.NoError(t, err)

	placer := &RasterScanPlacer{}
	goal, err := placer.PlaceGoal(m)
	require.NoError(t, err)

	passage, err := m.IsPassage(goal.X, goal.Y)
	require.NoError(t, err)
	assert.False(t, passage, "raster scan must land on a wall cell")

	// No wall cell may follow the chosen one in raster order.
	for y := goal.Y; y < m.Height(); y++ {
		startX := 0
		if y == goal.Y {
			startX = goal.X + 1
		}
		for x := startX; x < m.Width(); x++ {
			later, err := m.IsPassage(x, y)
			require.NoError(t, err)
			assert.True(t, later, "wall at (%d,%d) comes after the placed goal", x, y)
		}
	}
}

func TestFarthestPassagePlacer(t *testing.T) {
	m, err := maze.New(13, 13, rand.New(rand.NewSource(4)))
	require.NoError(t, err)

	placer := &FarthestPassagePlacer{}
	goal, err := placer.PlaceGoal(m)
	require.NoError(t, err)

	passage, err := m.IsPassage(goal.X, goal.Y)
	require.NoError(t, err)
	assert.True(t, passage, "farthest placement must land on a reachable passage")
}

func TestPlacersAreDeterministic(t *testing.T) {
	for name, placer := range map[string]GoalPlacer{
		"raster":   &RasterScanPlacer{},
		"farthest": &FarthestPassagePlacer{},
	} {
		t.Run(name, func(t *testing.T) {
			m, err := maze.New(9, 9, rand.New(rand.NewSource(17)))
			require.NoError(t, err)

			first, err := placer.PlaceGoal(m)
			require.NoError(t, err)
			second, err := placer.PlaceGoal(m)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}
