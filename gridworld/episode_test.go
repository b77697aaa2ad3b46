package gridworld

import (
	"testing"

	"github.com/gridforge/labyrinth-api/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corridorArena is a 3x1 open strip with the goal on the east end.
func corridorArena(t *testing.T) *Arena {
	t.Helper()
	arena, err := NewArena([][]bool{{true, true, true}}, maze.CellPosition{X: 2, Y: 0})
	require.NoError(t, err)
	return arena
}

func TestEpisodeReachesGoal(t *testing.T) {
	arena := corridorArena(t)
	ep, err := NewEpisode(arena, maze.CellPosition{X: 0, Y: 0})
	require.NoError(t, err)

	reward, done, err := ep.Step(ActionForward)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Zero(t, reward)

	reward, done, err = ep.Step(ActionForward)
	require.NoError(t, err)
	assert.True(t, done)

	// Two steps against a budget of 10*3*1.
	expected := 1 - 0.9*float64(2)/float64(30)
	assert.InDelta(t, expected, reward, 1e-9)

	_, _, err = ep.Step(ActionForward)
	assert.ErrorIs(t, err, ErrEpisodeOver)
}

func TestEpisodeTurning(t *testing.T) {
	arena := corridorArena(t)
	ep, err := NewEpisode(arena, maze.CellPosition{X: 0, Y: 0})
	require.NoError(t, err)

	assert.Equal(t, DirEast, ep.Facing())

	_, _, err = ep.Step(ActionTurnRight)
	require.NoError(t, err)
	assert.Equal(t, DirSouth, ep.Facing())

	_, _, err = ep.Step(ActionTurnLeft)
	require.NoError(t, err)
	assert.Equal(t, DirEast, ep.Facing())

	_, _, err = ep.Step(ActionTurnLeft)
	require.NoError(t, err)
	assert.Equal(t, DirNorth, ep.Facing())
}

func TestEpisodeWallBlocksMovement(t *testing.T) {
	arena, err := NewArena([][]bool{{true, false, true}}, maze.CellPosition{X: 2, Y: 0})
	require.NoError(t, err)

	ep, err := NewEpisode(arena, maze.CellPosition{X: 0, Y: 0})
	require.NoError(t, err)

	_, done, err := ep.Step(ActionForward)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, maze.CellPosition{X: 0, Y: 0}, ep.Agent(), "wall must block the move")
	assert.Equal(t, 1, ep.Steps(), "a blocked move still burns a step")
}

func TestEpisodeStepBudget(t *testing.T) {
	arena, err := NewArena([][]bool{{true, true}}, maze.CellPosition{X: 1, Y: 0})
	require.NoError(t, err)

	ep, err := NewEpisode(arena, maze.CellPosition{X: 0, Y: 0})
	require.NoError(t, err)
	require.Equal(t, 20, ep.MaxSteps())

	// Spin in place until the budget runs out.
	for i := 0; i < ep.MaxSteps()-1; i++ {
		_, done, err := ep.Step(ActionTurnLeft)
		require.NoError(t, err)
		require.False(t, done)
	}

	reward, done, err := ep.Step(ActionTurnLeft)
	require.NoError(t, err)
	assert.True(t, done, "budget exhaustion must terminate the episode")
	assert.Zero(t, reward, "timeout yields no reward")
}

func TestEpisodeRejectsUnknownAction(t *testing.T) {
	arena := corridorArena(t)
	ep, err := NewEpisode(arena, maze.CellPosition{X: 0, Y: 0})
	require.NoError(t, err)

	_, _, err = ep.Step(Action(42))
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.Zero(t, ep.Steps(), "rejected actions must not consume the budget")
}

func TestEpisodeInvalidStart(t *testing.T) {
	arena, err := NewArena([][]bool{{false, true}}, maze.CellPosition{X: 1, Y: 0})
	require.NoError(t, err)

	_, err = NewEpisode(arena, maze.CellPosition{X: 0, Y: 0})
	assert.ErrorIs(t, err, ErrInvalidStart)

	_, err = NewEpisode(arena, maze.CellPosition{X: 9, Y: 9})
	assert.ErrorIs(t, err, ErrInvalidStart)
}

func TestEpisodeSnapshotRoundTrip(t *testing.T) {
	arena := corridorArena(t)
	ep, err := NewEpisode(arena, maze.CellPosition{X: 0, Y: 0})
	require.NoError(t, err)

	_, _, err = ep.Step(ActionForward)
	require.NoError(t, err)
	_, _, err = ep.Step(ActionTurnRight)
	require.NoError(t, err)

	resumed, err := ResumeEpisode(arena, ep.Snapshot())
	require.NoError(t, err)

	assert.Equal(t, ep.Agent(), resumed.Agent())
	assert.Equal(t, ep.Facing(), resumed.Facing())
	assert.Equal(t, ep.Steps(), resumed.Steps())
	assert.Equal(t, ep.Terminated(), resumed.Terminated())
}
