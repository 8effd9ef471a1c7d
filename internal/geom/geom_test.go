package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

func TestSquare(t *testing.T) {
	assert.Equal(t, 9.0, Square(3))
	assert.Equal(t, 9.0, Square(-3))
	assert.Equal(t, 0.0, Square(0))
	assert.Equal(t, 2.25, Square(1.5))
}

func TestDistance(t *testing.T) {
	test := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           float64
	}{
		{"coincident", 1.5, -2.5, 1.5, -2.5, 0},
		{"unit_x", 0, 0, 1, 0, 1},
		{"unit_y", 0, 0, 0, 1, 1},
		{"pythagorean", 0, 0, 3, 4, 5},
		{"negative_quadrant", -3, -4, 0, 0, 5},
		{"diagonal", 0, 0, 10, 10, 14.142135623730951},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			d := Distance(tt.x1, tt.y1, tt.x2, tt.y2)
			assert.InDelta(t, tt.want, d, 1e-12)
			// symmetric under swapping point and center roles
			assert.Equal(t, d, Distance(tt.x2, tt.y2, tt.x1, tt.y1))
			assert.GreaterOrEqual(t, d, 0.0)
		})
	}
}

func TestDistanceMatchesL2Norm(t *testing.T) {
	// gonum as the independent oracle for the hand-rolled primitive.
	pairs := [][4]float64{
		{0, 0, 1, 1},
		{2.5, -3.25, -7.75, 0.5},
		{100, 200, -300, -400},
		{0.001, 0.002, 0.003, 0.004},
	}
	for _, p := range pairs {
		want := floats.Distance([]float64{p[0], p[1]}, []float64{p[2], p[3]}, 2)
		assert.InDelta(t, want, Distance(p[0], p[1], p[2], p[3]), 1e-12)
	}
}
