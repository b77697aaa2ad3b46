package i

import (
	"context"

	"github.com/google/uuid"
	dmn "github.com/gridforge/labyrinth-api/domain"
	"github.com/gridforge/labyrinth-api/gridworld"
)

// CreateMazeParams are the caller-controlled inputs for maze creation.
type CreateMazeParams struct {
	Width     int
	Height    int
	Seed      *int64 // nil picks a fresh random seed
	Strict    bool
	Placement string // goal placement strategy name, empty for the default
}

// ArenaManager creates mazes and drives episodes on top of them.
type ArenaManager interface {
	// CreateMaze generates, places a goal in, and persists a new maze.
	CreateMaze(ctx context.Context, params CreateMazeParams) (*dmn.MazeRecord, error)

	// MazeByID returns a stored maze record.
	MazeByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// StartEpisode opens a new episode on a stored maze, agent at the origin.
	StartEpisode(ctx context.Context, mazeID uuid.UUID) (uuid.UUID, gridworld.Snapshot, error)

	// ApplyAction applies one action to a running episode and returns the
	// resulting state and the reward earned by the action.
	ApplyAction(ctx context.Context, episodeID uuid.UUID, action gridworld.Action) (gridworld.Snapshot, float64, error)

	// EpisodeState returns the current state of an episode.
	EpisodeState(ctx context.Context, episodeID uuid.UUID) (gridworld.Snapshot, error)
}
