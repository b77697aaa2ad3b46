package maze

import "math/rand"

// coordSet is an unordered set of cell positions with O(1) insert, dedupe and
// uniform random removal. Members are kept in a slice alongside an index map
// so that random picks are a function of the rng alone, not of map iteration
// order.
type coordSet struct {
	index map[CellPosition]int
	cells []CellPosition
}

func newCoordSet() *coordSet {
	return &coordSet{
		index: make(map[CellPosition]int),
	}
}

// insert adds c to the set. Inserting a member already present is a no-op.
func (s *coordSet) insert(c CellPosition) {
	if s.contains(c) {
		return
	}
	s.index[c] = len(s.cells)
	s.cells = append(s.cells, c)
}

// contains reports whether c is a member of the set.
func (s *coordSet) contains(c CellPosition) bool {
	_, included := s.index[c]
	return included
}

// removeRandom removes and returns a member picked uniformly at random.
// The set must not be empty.
func (s *coordSet) removeRandom(rng *rand.Rand) CellPosition {
	i := rng.Intn(len(s.cells))
	picked := s.cells[i]

	last := len(s.cells) - 1
	s.cells[i] = s.cells[last]
	s.index[s.cells[i]] = i
	s.cells = s.cells[:last]
	delete(s.index, picked)

	return picked
}

func (s *coordSet) len() int {
	return len(s.cells)
}
