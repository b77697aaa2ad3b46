/*
Package gridworld hosts generated mazes as playable grid worlds.

An Arena owns a rectangular grid of typed tiles built from a maze lattice,
with a goal tile placed by a pluggable strategy. An Episode drives a single
agent through an arena under a step budget, granting a sparse reward on
reaching the goal.
*/
package gridworld

import (
	"errors"

	"github.com/gridforge/labyrinth-api/maze"
)

// Arena errors.
var (
	ErrOutOfBounds  = errors.New("tile position out of arena bounds")
	ErrEmptyGrid    = errors.New("arena grid must not be empty")
	ErrRaggedGrid   = errors.New("arena grid rows must have equal length")
	ErrInvalidStart = errors.New("agent start position must be a walkable tile")
)

// Tile is the kind of object occupying an arena cell.
type Tile byte

const (
	TileFloor Tile = iota // walkable, empty
	TileWall              // blocks movement
	TileGoal              // terminates the episode with a reward
)

// Arena is a rectangular grid of typed tiles with a single goal.
type Arena struct {
	width  int
	height int
	tiles  [][]Tile
	goal   maze.CellPosition
}

// BuildArena converts a generated maze into an arena. Wall cells of the
// lattice become wall tiles, passages become floor, and the goal tile is
// placed by the given strategy (RasterScanPlacer when nil).
func BuildArena(m *maze.PrimMaze, placer GoalPlacer) (*Arena, error) {
	if placer == nil {
		placer = &RasterScanPlacer{}
	}

	walkable := make([][]bool, m.Height())
	for y := range walkable {
		walkable[y] = make([]bool, m.Width())
		for x := range walkable[y] {
			passage, err := m.IsPassage(x, y)
			if err != nil {
				return nil, err
			}
			walkable[y][x] = passage
		}
	}

	goal, err := placer.PlaceGoal(m)
	if err != nil {
		return nil, err
	}

	return NewArena(walkable, goal)
}

// NewArena builds an arena from a walkability grid and a goal position. The
// goal overrides whatever tile the grid holds at its position, mirroring how
// the host drops typed objects onto the grid.
func NewArena(walkable [][]bool, goal maze.CellPosition) (*Arena, error) {
	if len(walkable) == 0 || len(walkable[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	height := len(walkable)
	width := len(walkable[0])

	tiles := make([][]Tile, height)
	for y, row := range walkable {
		if len(row) != width {
			return nil, ErrRaggedGrid
		}
		tiles[y] = make([]Tile, width)
		for x, open := range row {
			if !open {
				tiles[y][x] = TileWall
			}
		}
	}

	if goal.X < 0 || goal.X >= width || goal.Y < 0 || goal.Y >= height {
		return nil, ErrOutOfBounds
	}
	tiles[goal.Y][goal.X] = TileGoal

	return &Arena{
		width:  width,
		height: height,
		tiles:  tiles,
		goal:   goal,
	}, nil
}

// Width returns the number of tile columns.
func (a *Arena) Width() int {
	return a.width
}

// Height returns the number of tile rows.
func (a *Arena) Height() int {
	return a.height
}

// Goal returns the position of the goal tile.
func (a *Arena) Goal() maze.CellPosition {
	return a.goal
}

// At returns the tile at (x, y), bounds-checked.
func (a *Arena) At(x, y int) (Tile, error) {
	if !a.inBound(x, y) {
		return TileFloor, ErrOutOfBounds
	}
	return a.tiles[y][x], nil
}

// Put places a typed tile at (x, y), bounds-checked.
func (a *Arena) Put(x, y int, t Tile) error {
	if !a.inBound(x, y) {
		return ErrOutOfBounds
	}
	a.tiles[y][x] = t
	return nil
}

// walkableAt reports whether an agent may stand on (x, y).
func (a *Arena) walkableAt(x, y int) bool {
	return a.inBound(x, y) && a.tiles[y][x] != TileWall
}

func (a *Arena) inBound(x, y int) bool {
	return x >= 0 && x < a.width && y >= 0 && y < a.height
}
