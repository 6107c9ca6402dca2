package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gofvm/gofvm/euler"
	"github.com/gofvm/gofvm/mesh"
	"github.com/gofvm/gofvm/scheme"
	"github.com/gofvm/gofvm/state"
)

// periodicStrip builds a numCellsX x 1 strip of cells on the unit square.
func periodicStrip(t *testing.T, numCellsX int) *mesh.Structured {
	var (
		left   = mesh.NewLine(0, 0, 0, 1)
		bottom = mesh.NewLine(0, 0, 1, 0)
		right  = mesh.NewLine(1, 0, 1, 1)
		top    = mesh.NewLine(0, 1, 1, 1)
	)
	X, Y := mesh.Transfinite(left, bottom, right, top, numCellsX+1, 2)
	m, err := mesh.NewStructured(X, Y)
	assert.NoError(t, err)
	return m
}

func TestUniformFlowPreserved(t *testing.T) {
	/*
		A uniform state on a periodic strip is a steady solution: every face
		flux cancels against its twin, so CFL-bounded stepping must leave the
		state exactly unchanged up to roundoff.
	*/
	var (
		eos = euler.NewEOS(1.4)
		m   = periodicStrip(t, 40)
		sol = New(m, scheme.New(euler.NewRusanov(eos), nil), euler.Fields())
	)
	sol.Update = eos.Update
	err := sol.Init(func(x, y float64) []float64 {
		q := make([]float64, euler.NumFields)
		q[euler.Rho] = 1
		q[euler.RhoU] = 1 * 0.3
		q[euler.RhoV] = 0
		q[euler.RhoE] = eos.TotalEnergy(1, 0.3, 0, 1)
		return q
	})
	assert.NoError(t, err)

	initial := sol.Q.Copy()
	for step := 0; step < 10; step++ {
		dt, err := sol.MaxDT(0.9)
		assert.NoError(t, err)
		assert.True(t, dt > 0 && !math.IsInf(dt, 1))
		assert.NoError(t, sol.Step(dt))
	}
	for i, v := range sol.Q.DataP {
		assert.True(t, near(initial.DataP[i], v, 1.e-12))
	}
}

// advectionUpwind is the classic scalar upwind flux for a fixed advection
// velocity, used to exercise the solver loop end to end.
type advectionUpwind struct {
	vx, vy float64
}

func (a advectionUpwind) ConvectiveFlux(values, neighValues *state.State,
	normals [][2]float64, surfaces []float64) (*state.State, error) {
	if err := scheme.CheckFaceShapes(values, neighValues, normals, surfaces); err != nil {
		return nil, err
	}
	var (
		n  = values.NumSamples()
		FS = values.Type.NewArray(n)
	)
	for s := 0; s < n; s++ {
		un := a.vx*normals[s][0] + a.vy*normals[s][1]
		if un > 0 {
			FS.SetAt(s, 0, surfaces[s]*un*values.At(s, 0))
		} else {
			FS.SetAt(s, 0, surfaces[s]*un*neighValues.At(s, 0))
		}
	}
	return FS, nil
}

func (a advectionUpwind) CFL(values *state.State, volumes []float64, normals [][2]float64,
	surfaces []float64, cflNumber float64) (float64, error) {
	if err := scheme.CheckCellShapes(values, volumes, normals, surfaces); err != nil {
		return 0, err
	}
	dt := math.Inf(1)
	for s := range volumes {
		un := math.Abs(a.vx*normals[s][0] + a.vy*normals[s][1])
		if un*surfaces[s] == 0 {
			continue
		}
		dt = math.Min(dt, volumes[s]/(un*surfaces[s]))
	}
	return cflNumber * dt, nil
}

func TestAdvectionExactShift(t *testing.T) {
	/*
		First-order upwind at CFL exactly 1 translates the solution by one
		cell per step on a uniform periodic strip.
	*/
	var (
		numCells = 40
		m        = periodicStrip(t, numCells)
		layout   = state.MustNew("u")
		sol      = New(m, scheme.New(advectionUpwind{vx: 1}, nil), layout)
	)
	err := sol.Init(func(x, y float64) []float64 {
		// One-cell pulse
		if x > 0 && x < 1./float64(numCells) {
			return []float64{1}
		}
		return []float64{0}
	})
	assert.NoError(t, err)

	dt, err := sol.MaxDT(1)
	assert.NoError(t, err)
	assert.True(t, near(1./float64(numCells), dt, 1.e-12))

	for step := 0; step < numCells; step++ {
		assert.NoError(t, sol.Step(dt))
	}
	// After one full period the pulse is back where it started
	assert.True(t, near(1, sol.Q.At(0, 0), 1.e-9))
	for s := 1; s < numCells; s++ {
		assert.True(t, near(0, sol.Q.At(s, 0), 1.e-9))
	}
}

func TestInitArityCheck(t *testing.T) {
	var (
		m      = periodicStrip(t, 4)
		layout = state.MustNew("u")
		sol    = New(m, scheme.New(advectionUpwind{vx: 1}, nil), layout)
	)
	err := sol.Init(func(x, y float64) []float64 {
		return []float64{1, 2}
	})
	assert.Error(t, err)
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
