package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransfiniteUnitSquare(t *testing.T) {
	var (
		left   = NewLine(0, 0, 0, 1)
		bottom = NewLine(0, 0, 1, 0)
		right  = NewLine(1, 0, 1, 1)
		top    = NewLine(0, 1, 1, 1)
	)
	X, Y := Transfinite(left, bottom, right, top, 5, 5)
	// With straight unit-square boundaries the result is the exact uniform
	// Cartesian grid
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			assert.True(t, near(float64(i)/4, X.At(i, j), 1.e-12))
			assert.True(t, near(float64(j)/4, Y.At(i, j), 1.e-12))
		}
	}
}

func TestTransfiniteEdgesMatchCurves(t *testing.T) {
	var (
		left   = NewLine(0, 0, 0, 1)
		right  = NewLine(1, 0, 1, 1)
		bottom = NewLine(0, 0, 1, 0)
		// Curved top joining (0,1) to (1,1) through the arc apex
		top          = NewCircleArc(0.5, 1, 0.5, math.Pi, 0)
		numXi        = 9
		numEta       = 7
		X, Y         = Transfinite(left, bottom, right, top, numXi, numEta)
		checkBoundry = func(curve BoundaryCurve, xAt, yAt func(k int) float64, n int) {
			for k := 0; k < n; k++ {
				s := float64(k) / float64(n-1)
				xc, yc := curve(s)
				assert.True(t, near(xc, xAt(k), 1.e-12))
				assert.True(t, near(yc, yAt(k), 1.e-12))
			}
		}
	)
	// The generator reproduces all four boundary curves exactly
	checkBoundry(bottom,
		func(k int) float64 { return X.At(k, 0) },
		func(k int) float64 { return Y.At(k, 0) }, numXi)
	checkBoundry(top,
		func(k int) float64 { return X.At(k, numEta-1) },
		func(k int) float64 { return Y.At(k, numEta-1) }, numXi)
	checkBoundry(left,
		func(k int) float64 { return X.At(0, k) },
		func(k int) float64 { return Y.At(0, k) }, numEta)
	checkBoundry(right,
		func(k int) float64 { return X.At(numXi-1, k) },
		func(k int) float64 { return Y.At(numXi-1, k) }, numEta)
}

func TestStructuredGeometry(t *testing.T) {
	var (
		left   = NewLine(0, 0, 0, 1)
		bottom = NewLine(0, 0, 1, 0)
		right  = NewLine(1, 0, 1, 1)
		top    = NewLine(0, 1, 1, 1)
	)
	X, Y := Transfinite(left, bottom, right, top, 5, 5)
	m, err := NewStructured(X, Y)
	assert.NoError(t, err)
	assert.Equal(t, 16, m.NumCells())
	{ // Cell volumes tile the unit square
		var total float64
		for _, vol := range m.Volumes {
			assert.True(t, near(1./16, vol, 1.e-12))
			total += vol
		}
		assert.True(t, near(1., total, 1.e-12))
	}
	{ // Outward unit normals on a Cartesian grid are axis aligned
		for k := 0; k < m.NumCells(); k++ {
			assert.True(t, near(-1, m.Normals(Left)[k][0], 1.e-12))
			assert.True(t, near(0, m.Normals(Left)[k][1], 1.e-12))
			assert.True(t, near(1, m.Normals(Right)[k][0], 1.e-12))
			assert.True(t, near(0, m.Normals(Bottom)[k][0], 1.e-12))
			assert.True(t, near(-1, m.Normals(Bottom)[k][1], 1.e-12))
			assert.True(t, near(1, m.Normals(Top)[k][1], 1.e-12))
			assert.True(t, near(0.25, m.Surfaces(Left)[k], 1.e-12))
			assert.True(t, near(0.25, m.Surfaces(Top)[k], 1.e-12))
		}
	}
	{ // Periodic neighbour indexing wraps in both directions
		assert.Equal(t, 3, m.Neighbours(Left)[0])
		assert.Equal(t, 1, m.Neighbours(Right)[0])
		assert.Equal(t, 12, m.Neighbours(Bottom)[0])
		assert.Equal(t, 4, m.Neighbours(Top)[0])
		assert.Equal(t, 0, m.Neighbours(Right)[3])
	}
}

func TestStructuredShapeMismatch(t *testing.T) {
	var (
		left   = NewLine(0, 0, 0, 1)
		bottom = NewLine(0, 0, 1, 0)
		right  = NewLine(1, 0, 1, 1)
		top    = NewLine(0, 1, 1, 1)
	)
	X, _ := Transfinite(left, bottom, right, top, 5, 5)
	_, Y := Transfinite(left, bottom, right, top, 4, 4)
	_, err := NewStructured(X, Y)
	assert.Error(t, err)
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
