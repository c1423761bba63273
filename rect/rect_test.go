package rect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/praxis/rect"
)

// TestRect_Area verifies the basic width×height computation.
func TestRect_Area(t *testing.T) {
	r := rect.New(4, 2.5)
	assert.Equal(t, 10.0, r.Area())
}

// TestRect_AreaIsLive verifies Area is recomputed, not cached: mutating the
// fields after construction changes the next Area result.
func TestRect_AreaIsLive(t *testing.T) {
	r := rect.New(3, 3)
	assert.Equal(t, 9.0, r.Area())

	r.Width = 10
	assert.Equal(t, 30.0, r.Area(), "Area must reflect mutated Width")

	r.Height = 0
	assert.Equal(t, 0.0, r.Area(), "Area must reflect mutated Height")
}

// TestRect_ZeroValue verifies the zero rectangle has zero area.
func TestRect_ZeroValue(t *testing.T) {
	var r rect.Rect
	assert.Equal(t, 0.0, r.Area())
}
