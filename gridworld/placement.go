package gridworld

import (
	"errors"

	"github.com/gridforge/labyrinth-api/maze"
)

// ErrNoPlacement is returned when a strategy finds no suitable goal cell.
var ErrNoPlacement = errors.New("no suitable cell for goal placement")

// GoalPlacer chooses where the goal tile goes in a freshly generated maze.
// Placement is a host concern, decoupled from generation, so strategies are
// interchangeable.
type GoalPlacer interface {
	PlaceGoal(m *maze.PrimMaze) (maze.CellPosition, error)
}

// RasterScanPlacer places the goal on the last wall cell encountered while
// scanning the lattice row by row. This reproduces the historical host
// behavior; the chosen cell is not guaranteed to be far from the origin, nor
// reachable at all.
type RasterScanPlacer struct{}

// PlaceGoal scans the lattice and returns the last wall cell seen.
func (p *RasterScanPlacer) PlaceGoal(m *maze.PrimMaze) (maze.CellPosition, error) {
	goal := maze.CellPosition{}
	found := false
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			passage, err := m.IsPassage(x, y)
			if err != nil {
				return maze.CellPosition{}, err
			}
			if !passage {
				goal = maze.CellPosition{X: x, Y: y}
				found = true
			}
		}
	}
	if !found {
		return maze.CellPosition{}, ErrNoPlacement
	}
	return goal, nil
}

// FarthestPassagePlacer places the goal on the passage cell with the longest
// shortest-path distance from the origin, so the goal is always reachable.
type FarthestPassagePlacer struct{}

// PlaceGoal runs a BFS over passage cells from the origin and returns the
// last cell to leave the queue.
func (p *FarthestPassagePlacer) PlaceGoal(m *maze.PrimMaze) (maze.CellPosition, error) {
	origin := maze.CellPosition{X: 0, Y: 0}
	if passage, err := m.IsPassage(0, 0); err != nil || !passage {
		return maze.CellPosition{}, ErrNoPlacement
	}

	visited := map[maze.CellPosition]struct{}{origin: {}}
	queue := []maze.CellPosition{origin}
	farthest := origin

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		farthest = cell

		steps := []maze.CellPosition{
			{X: cell.X - 1, Y: cell.Y},
			{X: cell.X + 1, Y: cell.Y},
			{X: cell.X, Y: cell.Y - 1},
			{X: cell.X, Y: cell.Y + 1},
		}
		for _, next := range steps {
			passage, err := m.IsPassage(next.X, next.Y)
			if err != nil || !passage {
				continue
			}
			if _, seen := visited[next]; !seen {
				visited[next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}

	return farthest, nil
}
