package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	dmn "github.com/gridforge/labyrinth-api/domain"
	"github.com/gridforge/labyrinth-api/gridworld"
	"github.com/gridforge/labyrinth-api/maze"
	"github.com/gridforge/labyrinth-api/service/i"
)

// Goal placement strategy names accepted by CreateMaze.
const (
	PlacementRaster   = "raster"
	PlacementFarthest = "farthest"
)

const defaultMaxDimension = 64

// ArenaManager errors.
var (
	ErrDimensionTooLarge  = errors.New("maze dimension above configured maximum")
	ErrUnknownPlacement   = errors.New("unknown goal placement strategy")
	errEpisodeStateBroken = errors.New("stored episode state is corrupt")
)

// episodeState is the stored form of a running episode: which maze it runs
// on plus the episode snapshot.
type episodeState struct {
	MazeID uuid.UUID          `json:"maze_id"`
	Snap   gridworld.Snapshot `json:"snap"`
}

// ArenaManager generates mazes, persists them, and drives episodes stored in
// a shared episode store.
type ArenaManager struct {
	mazes        i.MazeRepo
	episodes     i.EpisodeStore
	logger       i.Logger
	maxDimension int
}

// ArenaManagerConfig configures a new ArenaManager.
type ArenaManagerConfig struct {
	MazeRepo     i.MazeRepo
	EpisodeStore i.EpisodeStore
	Logger       i.Logger
	MaxDimension int // zero means the default cap
}

// NewArenaManager creates an ArenaManager from its dependencies.
func NewArenaManager(c *ArenaManagerConfig) (*ArenaManager, error) {
	if c == nil || c.MazeRepo == nil || c.EpisodeStore == nil || c.Logger == nil {
		return nil, errors.New("arena manager requires a maze repo, an episode store and a logger")
	}

	maxDimension := c.MaxDimension
	if maxDimension <= 0 {
		maxDimension = defaultMaxDimension
	}

	return &ArenaManager{
		mazes:        c.MazeRepo,
		episodes:     c.EpisodeStore,
		logger:       c.Logger,
		maxDimension: maxDimension,
	}, nil
}

// placerFor maps a strategy name to a goal placer. The empty name selects
// the raster scan, which mirrors the historical host behavior.
func placerFor(name string) (gridworld.GoalPlacer, string, error) {
	switch name {
	case "", PlacementRaster:
		return &gridworld.RasterScanPlacer{}, PlacementRaster, nil
	case PlacementFarthest:
		return &gridworld.FarthestPassagePlacer{}, PlacementFarthest, nil
	default:
		return nil, "", ErrUnknownPlacement
	}
}

// CreateMaze generates a maze from the given parameters, places its goal and
// persists the result. A nil seed draws one from the clock, and the chosen
// seed is stored so the maze stays reproducible.
func (am *ArenaManager) CreateMaze(ctx context.Context, params i.CreateMazeParams) (*dmn.MazeRecord, error) {
	if params.Width > am.maxDimension || params.Height > am.maxDimension {
		return nil, ErrDimensionTooLarge
	}

	placer, placement, err := placerFor(params.Placement)
	if err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if params.Seed != nil {
		seed = *params.Seed
	}

	var opts []maze.Option
	if params.Strict {
		opts = append(opts, maze.WithStrictConnectivity())
	}

	m, err := maze.New(params.Width, params.Height, rand.New(rand.NewSource(seed)), opts...)
	if err != nil {
		return nil, err
	}

	arena, err := gridworld.BuildArena(m, placer)
	if err != nil {
		return nil, err
	}

	rows, err := dmn.EncodeRows(m)
	if err != nil {
		return nil, err
	}

	record := &dmn.MazeRecord{
		ID:        uuid.New(),
		Width:     params.Width,
		Height:    params.Height,
		Seed:      seed,
		Strict:    params.Strict,
		Placement: placement,
		Rows:      rows,
		Goal:      arena.Goal(),
		CreatedAt: time.Now().UTC(),
	}

	if err := am.mazes.Save(ctx, record); err != nil {
		am.logger.Error(fmt.Sprintf("saving maze record: %v", err))
		return nil, err
	}

	am.logger.Info(fmt.Sprintf("created %dx%d maze %s (seed %d, placement %s)",
		record.Width, record.Height, record.ID, record.Seed, record.Placement))
	return record, nil
}

// MazeByID returns a stored maze record.
func (am *ArenaManager) MazeByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	return am.mazes.ByID(ctx, id)
}

// StartEpisode opens a new episode on a stored maze with the agent at the
// origin cell, which is carved in every generated maze.
func (am *ArenaManager) StartEpisode(ctx context.Context, mazeID uuid.UUID) (uuid.UUID, gridworld.Snapshot, error) {
	record, err := am.mazes.ByID(ctx, mazeID)
	if err != nil {
		return uuid.Nil, gridworld.Snapshot{}, err
	}

	arena, err := arenaFromRecord(record)
	if err != nil {
		return uuid.Nil, gridworld.Snapshot{}, err
	}

	episode, err := gridworld.NewEpisode(arena, maze.CellPosition{X: 0, Y: 0})
	if err != nil {
		return uuid.Nil, gridworld.Snapshot{}, err
	}

	episodeID := uuid.New()
	state, err := json.Marshal(episodeState{MazeID: mazeID, Snap: episode.Snapshot()})
	if err != nil {
		return uuid.Nil, gridworld.Snapshot{}, err
	}

	if err := am.episodes.Create(ctx, episodeID, state); err != nil {
		am.logger.Error(fmt.Sprintf("storing new episode: %v", err))
		return uuid.Nil, gridworld.Snapshot{}, err
	}

	am.logger.Info(fmt.Sprintf("started episode %s on maze %s", episodeID, mazeID))
	return episodeID, episode.Snapshot(), nil
}

// ApplyAction applies one action to an episode under the store's lock and
// returns the resulting snapshot with the reward earned by the action. An
// episode that terminates here is removed from the store.
func (am *ArenaManager) ApplyAction(ctx context.Context, episodeID uuid.UUID, action gridworld.Action) (gridworld.Snapshot, float64, error) {
	var (
		snap   gridworld.Snapshot
		reward float64
	)

	err := am.episodes.Update(ctx, episodeID, func(state []byte) ([]byte, error) {
		var stored episodeState
		if err := json.Unmarshal(state, &stored); err != nil {
			return nil, errEpisodeStateBroken
		}

		record, err := am.mazes.ByID(ctx, stored.MazeID)
		if err != nil {
			return nil, err
		}

		arena, err := arenaFromRecord(record)
		if err != nil {
			return nil, err
		}

		episode, err := gridworld.ResumeEpisode(arena, stored.Snap)
		if err != nil {
			return nil, err
		}

		reward, _, err = episode.Step(action)
		if err != nil {
			return nil, err
		}

		snap = episode.Snapshot()
		return json.Marshal(episodeState{MazeID: stored.MazeID, Snap: snap})
	})
	if err != nil {
		return gridworld.Snapshot{}, 0, err
	}

	if snap.Terminated {
		if err := am.episodes.Delete(ctx, episodeID); err != nil {
			am.logger.Warning(fmt.Sprintf("removing finished episode %s: %v", episodeID, err))
		}
	}

	return snap, reward, nil
}

// EpisodeState returns the current snapshot of an episode.
func (am *ArenaManager) EpisodeState(ctx context.Context, episodeID uuid.UUID) (gridworld.Snapshot, error) {
	state, err := am.episodes.Get(ctx, episodeID)
	if err != nil {
		return gridworld.Snapshot{}, err
	}

	var stored episodeState
	if err := json.Unmarshal(state, &stored); err != nil {
		return gridworld.Snapshot{}, errEpisodeStateBroken
	}
	return stored.Snap, nil
}

// arenaFromRecord rebuilds the playable arena from a stored maze record.
func arenaFromRecord(record *dmn.MazeRecord) (*gridworld.Arena, error) {
	walkable, err := record.Walkable()
	if err != nil {
		return nil, err
	}
	return gridworld.NewArena(walkable, record.Goal)
}
