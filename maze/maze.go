/*
Package maze generates rectangular mazes with a randomized variant of Prim's
algorithm.

A maze is a boolean lattice where `true` marks a passage and `false` a wall.
Generation starts from the origin cell (0, 0) and grows the passage region by
repeatedly carving a random frontier cell (a wall at distance two from a
passage, along one axis) together with the wall between them. The result is a
spanning tree: every passage is reachable from the origin through exactly one
path of carved cells.

Randomness is injected at construction so that identical dimensions and seed
produce identical lattices.
*/
package maze

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

var (
	// ErrInvalidDimensions is returned when a maze dimension is too small
	// for distance-two carving to operate.
	ErrInvalidDimensions = errors.New("maze dimensions must be at least 2x2")

	// ErrOutOfBounds is returned when a cell position lies outside the lattice.
	ErrOutOfBounds = errors.New("cell position out of maze bounds")
)

// CellPosition identifies a lattice cell. X grows to the east, Y to the south.
type CellPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PrimMaze is a rectangular maze lattice generated with randomized Prim's
// algorithm. The lattice is immutable once New returns.
type PrimMaze struct {
	width  int
	height int
	grid   [][]bool // grid[y][x], true = passage
	rng    *rand.Rand
	strict bool
	pops   int // frontier cells processed during generation
}

// Option configures maze generation.
type Option func(*PrimMaze)

// WithStrictConnectivity makes the generator fold in the frontier of a cell
// only when that cell was actually carved. Without it, a frontier cell popped
// with no passage neighbor in reach is dropped uncarved but its own frontier
// is still explored, matching the original growth behavior.
func WithStrictConnectivity() Option {
	return func(m *PrimMaze) {
		m.strict = true
	}
}

// New generates a maze of the given dimensions. Generation is eager: the
// lattice is complete when New returns, and no intermediate state is ever
// observable. The rng drives every random pick; passing nil falls back to a
// time-seeded source, which forfeits reproducibility.
func New(width, height int, rng *rand.Rand, opts ...Option) (*PrimMaze, error) {
	if width < 2 || height < 2 {
		return nil, ErrInvalidDimensions
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	grid := make([][]bool, height)
	for y := range grid {
		grid[y] = make([]bool, width)
	}

	m := &PrimMaze{
		width:  width,
		height: height,
		grid:   grid,
		rng:    rng,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.generate()
	return m, nil
}

// Width returns the number of columns in the lattice.
func (m *PrimMaze) Width() int {
	return m.width
}

// Height returns the number of rows in the lattice.
func (m *PrimMaze) Height() int {
	return m.height
}

// IsPassage reports whether the cell at (x, y) is a passage. It is a pure
// read and returns ErrOutOfBounds outside [0,width)x[0,height).
func (m *PrimMaze) IsPassage(x, y int) (bool, error) {
	if !m.inBound(x, y) {
		return false, ErrOutOfBounds
	}
	return m.grid[y][x], nil
}

func (m *PrimMaze) inBound(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// axisNeighbors returns the in-bound cells at exactly distance two from
// (x, y) along a single axis, diagonals excluded. The order is fixed so that
// random picks depend only on the injected rng.
func (m *PrimMaze) axisNeighbors(x, y int) []CellPosition {
	candidates := [4]CellPosition{
		{X: x - 2, Y: y},
		{X: x + 2, Y: y},
		{X: x, Y: y - 2},
		{X: x, Y: y + 2},
	}

	var result []CellPosition
	for _, c := range candidates {
		if m.inBound(c.X, c.Y) {
			result = append(result, c)
		}
	}
	return result
}

// frontier returns the wall cells at exactly distance two from (x, y) along
// one axis. These are the cells eligible to be carved next.
func (m *PrimMaze) frontier(x, y int) []CellPosition {
	var cells []CellPosition
	for _, c := range m.axisNeighbors(x, y) {
		if !m.grid[c.Y][c.X] {
			cells = append(cells, c)
		}
	}
	return cells
}

// neighbors returns the passage cells at exactly distance two from (x, y)
// along one axis. These are the cells a frontier cell may attach to.
func (m *PrimMaze) neighbors(x, y int) []CellPosition {
	var cells []CellPosition
	for _, c := range m.axisNeighbors(x, y) {
		if m.grid[c.Y][c.X] {
			cells = append(cells, c)
		}
	}
	return cells
}

// connect carves the wall cell and the midpoint between it and the passage
// cell, joining the two. Both positions must differ by exactly two along
// exactly one axis. The two writes are not observable separately.
func (m *PrimMaze) connect(wall, passage CellPosition) {
	m.grid[wall.Y][wall.X] = true
	m.grid[(wall.Y+passage.Y)/2][(wall.X+passage.X)/2] = true
}

// generate grows the maze from the origin until the frontier working set is
// exhausted. The working set deduplicates positions: a cell may be re-added
// after removal while it is still a wall, but never holds duplicates.
func (m *PrimMaze) generate() {
	m.grid[0][0] = true

	working := newCoordSet()
	for _, f := range m.frontier(0, 0) {
		working.insert(f)
	}

	for working.len() > 0 {
		cell := working.removeRandom(m.rng)
		m.pops++

		ns := m.neighbors(cell.X, cell.Y)
		connected := len(ns) > 0
		if connected {
			m.connect(cell, ns[m.rng.Intn(len(ns))])
		}

		// A cell popped with no passage in reach stays a wall. Its frontier
		// is still explored unless strict connectivity was requested.
		if connected || !m.strict {
			for _, f := range m.frontier(cell.X, cell.Y) {
				working.insert(f)
			}
		}
	}
}

// String provides a textual representation of the lattice, one rune per cell.
func (m *PrimMaze) String() string {
	var output strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.grid[y][x] {
				output.WriteByte('.')
			} else {
				output.WriteByte('#')
			}
		}
		output.WriteByte('\n')
	}
	return output.String()
}
