package euler

import (
	"fmt"
	"math"

	"github.com/gofvm/gofvm/scheme"
	"github.com/gofvm/gofvm/state"
)

// Rusanov is the local Lax-Friedrichs convective flux for the single-phase
// Euler system, with its matching CFL bound.
type Rusanov struct {
	Problem Problem
}

func NewRusanov(eos EOS) *Rusanov {
	return &Rusanov{Problem: NewProblem(eos)}
}

func checkLayout(q *state.State) error {
	if q.Type.NumFields() != NumFields {
		return fmt.Errorf("expected a %d-field Euler state, got %d fields",
			NumFields, q.Type.NumFields())
	}
	return nil
}

// UNorm projects the velocity of one sample onto a face normal.
func UNorm(q *state.State, sample int, normal [2]float64) float64 {
	return q.At(sample, U)*normal[0] + q.At(sample, V)*normal[1]
}

// Sigma is the maximal local signal speed bound across a face. The maximum of
// the two sides is required: averaging understates the dissipation and can
// destabilize the scheme.
func Sigma(uNorm, c, uNormNeigh, cNeigh float64) float64 {
	return math.Max(math.Abs(uNorm)+c, math.Abs(uNormNeigh)+cNeigh)
}

/*
ConvectiveFlux evaluates the Rusanov flux on one face per cell:

	FS = S * ( 0.5 (F(qL) + F(qR)) . n - 0.5 sigma (cons(qR) - cons(qL)) )

The central average of the flux tensors is dotted with the outward normal
and the jump dissipation acts on the conserved subset only. Auxiliary
fields of the returned state are zero.
*/
func (r *Rusanov) ConvectiveFlux(values, neighValues *state.State,
	normals [][2]float64, surfaces []float64) (*state.State, error) {
	if err := scheme.CheckFaceShapes(values, neighValues, normals, surfaces); err != nil {
		return nil, err
	}
	if err := checkLayout(values); err != nil {
		return nil, err
	}
	var (
		n  = values.NumSamples()
		FS = values.Type.NewArray(n)
	)
	for s := 0; s < n; s++ {
		var (
			nrm = normals[s]
			uL  = UNorm(values, s, nrm)
			uR  = UNorm(neighValues, s, nrm)
			sig = Sigma(uL, values.At(s, C), uR, neighValues.At(s, C))
			FL  = r.Problem.Flux(values, s)
			FR  = r.Problem.Flux(neighValues, s)
		)
		for f := 0; f < 4; f++ {
			avg := 0.5 * (nrm[0]*(FL[f][0]+FR[f][0]) + nrm[1]*(FL[f][1]+FR[f][1]))
			jump := neighValues.At(s, f) - values.At(s, f)
			FS.SetAt(s, f, surfaces[s]*(avg-0.5*sig*jump))
		}
	}
	return FS, nil
}

// CFL returns the largest stable explicit time step,
// cflNumber * min over cells of volume / (surface * sigma). Faces with zero
// signal speed are excluded from the minimum.
func (r *Rusanov) CFL(values *state.State, volumes []float64, normals [][2]float64,
	surfaces []float64, cflNumber float64) (float64, error) {
	if err := scheme.CheckCellShapes(values, volumes, normals, surfaces); err != nil {
		return 0, err
	}
	if err := checkLayout(values); err != nil {
		return 0, err
	}
	var (
		n  = values.NumSamples()
		dt = math.Inf(1)
	)
	for s := 0; s < n; s++ {
		var (
			sig   = math.Abs(UNorm(values, s, normals[s])) + values.At(s, C)
			denom = sig * surfaces[s]
		)
		if denom == 0 {
			continue
		}
		if dtc := volumes[s] / denom; dtc < dt {
			dt = dtc
		}
	}
	return cflNumber * dt, nil
}
