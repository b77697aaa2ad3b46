package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gridforge/labyrinth-api/maze"
)

// ErrCorruptLattice is returned when stored maze rows cannot be decoded.
var ErrCorruptLattice = errors.New("stored maze rows are corrupt")

// Lattice row encoding used for storage and transport.
const (
	passageRune = '1'
	wallRune    = '0'
)

// MazeRecord is the persisted form of a generated maze together with the
// parameters that produced it and the placed goal.
type MazeRecord struct {
	ID        uuid.UUID         `bson:"_id" json:"id"`
	Width     int               `bson:"width" json:"width"`
	Height    int               `bson:"height" json:"height"`
	Seed      int64             `bson:"seed" json:"seed"`
	Strict    bool              `bson:"strict" json:"strict"`
	Placement string            `bson:"placement" json:"placement"`
	Rows      []string          `bson:"rows" json:"rows"`
	Goal      maze.CellPosition `bson:"goal" json:"goal"`
	CreatedAt time.Time         `bson:"createdAt" json:"created_at"`
}

// EncodeRows flattens a lattice into storable rows of '1' (passage) and '0'
// (wall) runes.
func EncodeRows(m *maze.PrimMaze) ([]string, error) {
	rows := make([]string, m.Height())
	for y := 0; y < m.Height(); y++ {
		row := make([]byte, m.Width())
		for x := 0; x < m.Width(); x++ {
			passage, err := m.IsPassage(x, y)
			if err != nil {
				return nil, err
			}
			if passage {
				row[x] = passageRune
			} else {
				row[x] = wallRune
			}
		}
		rows[y] = string(row)
	}
	return rows, nil
}

// Walkable decodes the stored rows back into a walkability grid.
func (r *MazeRecord) Walkable() ([][]bool, error) {
	if len(r.Rows) != r.Height {
		return nil, ErrCorruptLattice
	}

	grid := make([][]bool, r.Height)
	for y, row := range r.Rows {
		if len(row) != r.Width {
			return nil, ErrCorruptLattice
		}
		grid[y] = make([]bool, r.Width)
		for x := 0; x < r.Width; x++ {
			switch row[x] {
			case passageRune:
				grid[y][x] = true
			case wallRune:
				grid[y][x] = false
			default:
				return nil, ErrCorruptLattice
			}
		}
	}
	return grid, nil
}
