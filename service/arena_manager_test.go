package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	dmn "github.com/gridforge/labyrinth-api/domain"
	"github.com/gridforge/labyrinth-api/gridworld"
	"github.com/gridforge/labyrinth-api/maze"
	"github.com/gridforge/labyrinth-api/service/i"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memMazeRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*dmn.MazeRecord
}

func newMemMazeRepo() *memMazeRepo {
	return &memMazeRepo{records: make(map[uuid.UUID]*dmn.MazeRecord)}
}

func (r *memMazeRepo) Save(_ context.Context, record *dmn.MazeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = record
	return nil
}

func (r *memMazeRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, i.ErrMazeNotFound
	}
	return record, nil
}

type memEpisodeStore struct {
	mu     sync.Mutex
	states map[uuid.UUID][]byte
}

func newMemEpisodeStore() *memEpisodeStore {
	return &memEpisodeStore{states: make(map[uuid.UUID][]byte)}
}

func (s *memEpisodeStore) Create(_ context.Context, id uuid.UUID, state []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[id] = state
	return nil
}

func (s *memEpisodeStore) Get(_ context.Context, id uuid.UUID) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[id]
	if !ok {
		return nil, i.ErrEpisodeNotFound
	}
	return state, nil
}

func (s *memEpisodeStore) Update(ctx context.Context, id uuid.UUID, fn func([]byte) ([]byte, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[id]
	if !ok {
		return i.ErrEpisodeNotFound
	}
	next, err := fn(state)
	if err != nil {
		return err
	}
	s.states[id] = next
	return nil
}

func (s *memEpisodeStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func newTestManager(t *testing.T) *ArenaManager {
	t.Helper()
	am, err := NewArenaManager(&ArenaManagerConfig{
		MazeRepo:     newMemMazeRepo(),
		EpisodeStore: newMemEpisodeStore(),
		Logger:       nopLogger{},
	})
	require.NoError(t, err)
	return am
}

func seedPtr(v int64) *int64 { return &v }

func TestCreateMaze(t *testing.T) {
	am := newTestManager(t)
	ctx := context.Background()

	t.Run("stores a reproducible record", func(t *testing.T) {
		record, err := am.CreateMaze(ctx, i.CreateMazeParams{Width: 9, Height: 7, Seed: seedPtr(42)})
		require.NoError(t, err)

		assert.Equal(t, int64(42), record.Seed)
		assert.Equal(t, PlacementRaster, record.Placement)
		assert.Len(t, record.Rows, 7)

		again, err := am.CreateMaze(ctx, i.CreateMazeParams{Width: 9, Height: 7, Seed: seedPtr(42)})
		require.NoError(t, err)
		assert.Equal(t, record.Rows, again.Rows)
		assert.Equal(t, record.Goal, again.Goal)
	})

	t.Run("farthest placement puts the goal on a passage", func(t *testing.T) {
		record, err := am.CreateMaze(ctx, i.CreateMazeParams{
			Width: 11, Height: 11, Seed: seedPtr(3), Placement: PlacementFarthest,
		})
		require.NoError(t, err)

		walkable, err := record.Walkable()
		require.NoError(t, err)
		assert.True(t, walkable[record.Goal.Y][record.Goal.X])
	})

	t.Run("rejects oversized dimensions", func(t *testing.T) {
		_, err := am.CreateMaze(ctx, i.CreateMazeParams{Width: 65, Height: 5})
		assert.ErrorIs(t, err, ErrDimensionTooLarge)
	})

	t.Run("rejects degenerate dimensions", func(t *testing.T) {
		_, err := am.CreateMaze(ctx, i.CreateMazeParams{Width: 1, Height: 1})
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
		_, err = am.CreateMaze(ctx, i.CreateMazeParams{Width: 0, Height: 5})
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	})

	t.Run("rejects unknown placement", func(t *testing.T) {
		_, err := am.CreateMaze(ctx, i.CreateMazeParams{Width: 5, Height: 5, Placement: "bogus"})
		assert.ErrorIs(t, err, ErrUnknownPlacement)
	})
}

func TestEpisodeLifecycle(t *testing.T) {
	am := newTestManager(t)
	ctx := context.Background()

	record, err := am.CreateMaze(ctx, i.CreateMazeParams{Width: 7, Height: 7, Seed: seedPtr(11)})
	require.NoError(t, err)

	episodeID, snap, err := am.StartEpisode(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, maze.CellPosition{X: 0, Y: 0}, snap.Agent)
	assert.Zero(t, snap.Steps)

	snap, reward, err := am.ApplyAction(ctx, episodeID, gridworld.ActionTurnRight)
	require.NoError(t, err)
	assert.Zero(t, reward)
	assert.Equal(t, gridworld.DirSouth, snap.Dir)
	assert.Equal(t, 1, snap.Steps)

	// State must survive the round trip through the store.
	fetched, err := am.EpisodeState(ctx, episodeID)
	require.NoError(t, err)
	assert.Equal(t, snap, fetched)

	_, _, err = am.ApplyAction(ctx, uuid.New(), gridworld.ActionForward)
	assert.ErrorIs(t, err, i.ErrEpisodeNotFound)

	_, _, err = am.StartEpisode(ctx, uuid.New())
	assert.ErrorIs(t, err, i.ErrMazeNotFound)
}

func TestFinishedEpisodeIsRemoved(t *testing.T) {
	am := newTestManager(t)
	ctx := context.Background()

	record, err := am.CreateMaze(ctx, i.CreateMazeParams{Width: 2, Height: 2, Seed: seedPtr(7)})
	require.NoError(t, err)

	episodeID, snap, err := am.StartEpisode(ctx, record.ID)
	require.NoError(t, err)

	// Spin in place until the step budget runs out.
	for !snap.Terminated {
		snap, _, err = am.ApplyAction(ctx, episodeID, gridworld.ActionTurnLeft)
		require.NoError(t, err)
	}

	_, err = am.EpisodeState(ctx, episodeID)
	assert.ErrorIs(t, err, i.ErrEpisodeNotFound)

	_, _, err = am.ApplyAction(ctx, episodeID, gridworld.ActionForward)
	assert.ErrorIs(t, err, i.ErrEpisodeNotFound)
}
