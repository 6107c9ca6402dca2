package twophase

import (
	"github.com/gofvm/gofvm/scheme"
	"github.com/gofvm/gofvm/state"
)

// Upwind is the sign-of-interfacial-velocity nonconservative coupling term.
type Upwind struct {
	Closure Closure
}

func NewUpwind(closure Closure) *Upwind {
	return &Upwind{Closure: closure}
}

/*
NonConservativeTerm selects a face state by the sign of the face-normal
interfacial velocity, averaged between the two sides: the neighbour state
where it is positive, the cell's own state where it is negative, and the
central average of the two where it is exactly zero. The selected state's
outer product with the normal is contracted against the coupling tensor B
averaged between the two sides, then scaled by the face surface.
*/
func (u *Upwind) NonConservativeTerm(values, neighValues *state.State,
	normals [][2]float64, surfaces []float64) (*state.State, error) {
	if err := scheme.CheckFaceShapes(values, neighValues, normals, surfaces); err != nil {
		return nil, err
	}
	var (
		n     = values.NumSamples()
		nf    = values.Type.NumFields()
		out   = values.Type.NewArray(n)
		qFace = make([]float64, nf)
	)
	for s := 0; s < n; s++ {
		var (
			nrm       = normals[s]
			uI, vI    = u.Closure.InterfacialVelocity(values, s)
			uIn, vIn  = u.Closure.InterfacialVelocity(neighValues, s)
			uFace     = 0.5 * ((uI*nrm[0] + vI*nrm[1]) + (uIn*nrm[0] + vIn*nrm[1]))
			B, Bneigh = u.Closure.B(values, s), u.Closure.B(neighValues, s)
		)
		switch {
		case uFace > 0:
			for f := 0; f < nf; f++ {
				qFace[f] = neighValues.At(s, f)
			}
		case uFace < 0:
			for f := 0; f < nf; f++ {
				qFace[f] = values.At(s, f)
			}
		default:
			for f := 0; f < nf; f++ {
				qFace[f] = 0.5 * (values.At(s, f) + neighValues.At(s, f))
			}
		}
		// out_i = S * sum_j qFace_j (Bavg[i][j] . n)
		for i := 0; i < nf; i++ {
			var acc float64
			for j := 0; j < nf; j++ {
				bx := 0.5 * (B[i][j][0] + Bneigh[i][j][0])
				by := 0.5 * (B[i][j][1] + Bneigh[i][j][1])
				acc += qFace[j] * (bx*nrm[0] + by*nrm[1])
			}
			out.SetAt(s, i, surfaces[s]*acc)
		}
	}
	return out, nil
}
