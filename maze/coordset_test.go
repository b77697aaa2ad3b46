package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordSetDeduplicates(t *testing.T) {
	s := newCoordSet()
	s.insert(CellPosition{X: 1, Y: 2})
	s.insert(CellPosition{X: 1, Y: 2})
	s.insert(CellPosition{X: 2, Y: 1})

	assert.Equal(t, 2, s.len())
	assert.True(t, s.contains(CellPosition{X: 1, Y: 2}))
	assert.False(t, s.contains(CellPosition{X: 5, Y: 5}))
}

func TestCoordSetRemoveRandomDrains(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	s := newCoordSet()

	members := map[CellPosition]struct{}{}
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			c := CellPosition{X: x, Y: y}
			s.insert(c)
			members[c] = struct{}{}
		}
	}

	for s.len() > 0 {
		c := s.removeRandom(rng)
		_, known := members[c]
		assert.True(t, known, "removed position %v was never inserted", c)
		delete(members, c)
		assert.False(t, s.contains(c))
	}
	assert.Empty(t, members, "every inserted position must come back out once")
}

func TestCoordSetReinsertAfterRemoval(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	s := newCoordSet()

	c := CellPosition{X: 3, Y: 3}
	s.insert(c)
	assert.Equal(t, c, s.removeRandom(rng))
	assert.Equal(t, 0, s.len())

	s.insert(c)
	assert.True(t, s.contains(c))
	assert.Equal(t, 1, s.len())
}
