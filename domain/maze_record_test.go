package domain

import (
	"math/rand"
	"testing"

	"github.com/gridforge/labyrinth-api/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRowsRoundTrip(t *testing.T) {
	m, err := maze.New(9, 5, rand.New(rand.NewSource(13)))
	require.NoError(t, err)

	rows, err := EncodeRows(m)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	record := &MazeRecord{Width: 9, Height: 5, Rows: rows}
	walkable, err := record.Walkable()
	require.NoError(t, err)

	for y := 0; y < 5; y++ {
		for x := 0; x < 9; x++ {
			passage, err := m.IsPassage(x, y)
			require.NoError(t, err)
			assert.Equal(t, passage, walkable[y][x], "cell (%d,%d)", x, y)
		}
	}
}

func TestWalkableRejectsCorruptRows(t *testing.T) {
	cases := []struct {
		name   string
		record MazeRecord
	}{
		{"missing row", MazeRecord{Width: 2, Height: 2, Rows: []string{"10"}}},
		{"short row", MazeRecord{Width: 3, Height: 1, Rows: []string{"10"}}},
		{"bad rune", MazeRecord{Width: 2, Height: 1, Rows: []string{"1x"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.record.Walkable()
			assert.ErrorIs(t, err, ErrCorruptLattice)
		})
	}
}
