package twophase

import (
	"fmt"
	"math"

	"github.com/gofvm/gofvm/euler"
	"github.com/gofvm/gofvm/scheme"
	"github.com/gofvm/gofvm/state"
)

var conservativeLayout = state.MustNew(euler.ConservativeFields()...)

// Rusanov applies the single-phase Rusanov flux independently per phase,
// with the dissipation coefficient shared across phases at each face.
type Rusanov struct {
	EOS EOS
}

func NewRusanov(eos EOS) *Rusanov {
	return &Rusanov{EOS: eos}
}

// faceSigma is the per-face signal speed bound: the maximum over both phases
// and both sides. The phases share this one value; dissipating each phase
// with its own bound breaks the consistency of the coupled system.
func (r *Rusanov) faceSigma(phaseValues, phaseNeigh [2]*state.State,
	normals [][2]float64) (sigma []float64) {
	var (
		n = len(normals)
	)
	sigma = make([]float64, n)
	for _, p := range Phases {
		pv, pnv := phaseValues[p], phaseNeigh[p]
		for s := 0; s < n; s++ {
			sig := euler.Sigma(
				euler.UNorm(pv, s, normals[s]), pv.At(s, euler.C),
				euler.UNorm(pnv, s, normals[s]), pnv.At(s, euler.C))
			if sig > sigma[s] {
				sigma[s] = sig
			}
		}
	}
	return
}

func splitPhases(q *state.State) (phases [2]*state.State, err error) {
	if q.Type.NumFields() != NumFields {
		return phases, fmt.Errorf("expected a %d-field two-phase state, got %d fields",
			NumFields, q.Type.NumFields())
	}
	for _, p := range Phases {
		if phases[p], err = GetPhase(q, p); err != nil {
			return phases, err
		}
	}
	return
}

// ConvectiveFlux evaluates the phase-wise Rusanov flux. Each phase gets the
// single-phase formula with its own EOS, but the sigma is the shared per-face
// maximum from faceSigma. Mixture and auxiliary fields of the result are
// zero.
func (r *Rusanov) ConvectiveFlux(values, neighValues *state.State,
	normals [][2]float64, surfaces []float64) (*state.State, error) {
	if err := scheme.CheckFaceShapes(values, neighValues, normals, surfaces); err != nil {
		return nil, err
	}
	var (
		n  = values.NumSamples()
		FS = values.Type.NewArray(n)
	)
	phaseValues, err := splitPhases(values)
	if err != nil {
		return nil, err
	}
	phaseNeigh, err := splitPhases(neighValues)
	if err != nil {
		return nil, err
	}
	sigma := r.faceSigma(phaseValues, phaseNeigh, normals)

	for _, p := range Phases {
		var (
			prob    = euler.NewProblem(r.EOS.Phase(p))
			pv, pnv = phaseValues[p], phaseNeigh[p]
			fsPhase = conservativeLayout.NewArray(n)
		)
		for s := 0; s < n; s++ {
			var (
				nrm = normals[s]
				FL  = prob.Flux(pv, s)
				FR  = prob.Flux(pnv, s)
			)
			for f := 0; f < 4; f++ {
				avg := 0.5 * (nrm[0]*(FL[f][0]+FR[f][0]) + nrm[1]*(FL[f][1]+FR[f][1]))
				jump := pnv.At(s, f) - pv.At(s, f)
				fsPhase.SetAt(s, f, surfaces[s]*(avg-0.5*sigma[s]*jump))
			}
		}
		if err = SetPhaseConservative(FS, p, fsPhase); err != nil {
			return nil, err
		}
	}
	return FS, nil
}

// CFL is the minimum over the two phases of the single-phase Rusanov bound.
func (r *Rusanov) CFL(values *state.State, volumes []float64, normals [][2]float64,
	surfaces []float64, cflNumber float64) (float64, error) {
	if err := scheme.CheckCellShapes(values, volumes, normals, surfaces); err != nil {
		return 0, err
	}
	phaseValues, err := splitPhases(values)
	if err != nil {
		return 0, err
	}
	dt := math.Inf(1)
	for _, p := range Phases {
		phaseDT, err := euler.NewRusanov(r.EOS.Phase(p)).CFL(
			phaseValues[p], volumes, normals, surfaces, cflNumber)
		if err != nil {
			return 0, err
		}
		dt = math.Min(dt, phaseDT)
	}
	return dt, nil
}
