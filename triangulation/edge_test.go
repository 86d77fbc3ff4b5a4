package triangulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEdgeCanonicalization(t *testing.T) {
	a := Point{X: 3, Y: 1}
	b := Point{X: 1, Y: 2}
	assert.Equal(t, NewEdge(a, b), NewEdge(b, a))
	assert.Equal(t, b, NewEdge(a, b).A)
	assert.Equal(t, a, NewEdge(a, b).B)
}

func TestEdgeAsMapKey(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 1, Y: 1}
	seen := map[Edge]int{}
	seen[NewEdge(a, b)]++
	seen[NewEdge(b, a)]++
	assert.Len(t, seen, 1)
	assert.Equal(t, 2, seen[NewEdge(a, b)])
}

func TestNewEdgeRejectsEqualPoints(t *testing.T) {
	p := Point{X: 2, Y: 2}
	assert.Panics(t, func() { NewEdge(p, p) })
}
