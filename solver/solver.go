package solver

import (
	"fmt"
	"math"

	"github.com/gofvm/gofvm/mesh"
	"github.com/gofvm/gofvm/scheme"
	"github.com/gofvm/gofvm/state"
)

/*
Solver drives one state array over a structured periodic grid with a
composed scheme. Each explicit step sweeps the four face directions,
accumulates the per-face contributions and advances

	q_new = q_old - dt/volume * sum of face contributions

Update, when set, refreshes auxiliary fields (EOS closure) after each
advance.
*/
type Solver struct {
	Mesh   *mesh.Structured
	Scheme *scheme.Scheme
	Q      *state.State
	Update func(*state.State) error
}

func New(m *mesh.Structured, sch *scheme.Scheme, layout state.StateType) (s *Solver) {
	s = &Solver{
		Mesh:   m,
		Scheme: sch,
		Q:      layout.NewArray(m.NumCells()),
	}
	return
}

// Init sets every cell from a pointwise function of its centroid. The
// function must return one value per field of the layout.
func (s *Solver) Init(f func(x, y float64) []float64) error {
	var (
		nf = s.Q.Type.NumFields()
		n  = s.Q.NumSamples()
	)
	for k := 0; k < n; k++ {
		vals := f(s.Mesh.CentroidX[k], s.Mesh.CentroidY[k])
		if len(vals) != nf {
			return fmt.Errorf("init function returned %d values for %d fields",
				len(vals), nf)
		}
		for i, v := range vals {
			s.Q.SetAt(k, i, v)
		}
	}
	if s.Update != nil {
		return s.Update(s.Q)
	}
	return nil
}

// MaxDT returns the stable time step bound over all four face directions.
func (s *Solver) MaxDT(cflNumber float64) (dt float64, err error) {
	dt = math.Inf(1)
	for _, d := range mesh.FaceDirections {
		var dtDir float64
		dtDir, err = s.Scheme.CFL(s.Q, s.Mesh.Volumes, s.Mesh.Normals(d),
			s.Mesh.Surfaces(d), cflNumber)
		if err != nil {
			return 0, err
		}
		dt = math.Min(dt, dtDir)
	}
	return
}

// Step advances the solution by one explicit step of size dt.
func (s *Solver) Step(dt float64) error {
	var (
		n     = s.Q.NumSamples()
		nf    = s.Q.Type.NumFields()
		total = s.Q.Type.NewArray(n)
	)
	for _, d := range mesh.FaceDirections {
		neighQ := s.Q.Gather(s.Mesh.Neighbours(d))
		flux, err := s.Scheme.Accumulate(s.Q, neighQ, s.Mesh.Normals(d), s.Mesh.Surfaces(d))
		if err != nil {
			return err
		}
		if err = total.Add(flux); err != nil {
			return err
		}
	}
	for f := 0; f < nf; f++ {
		off := f * n
		for k := 0; k < n; k++ {
			s.Q.DataP[off+k] -= dt / s.Mesh.Volumes[k] * total.DataP[off+k]
		}
	}
	if s.Update != nil {
		return s.Update(s.Q)
	}
	return nil
}

// Residual returns the L2 norm of the change between two state snapshots,
// used for convergence reporting.
func Residual(prev, cur *state.State) (res float64) {
	for i, v := range cur.DataP {
		d := v - prev.DataP[i]
		res += d * d
	}
	return math.Sqrt(res / float64(len(cur.DataP)))
}
