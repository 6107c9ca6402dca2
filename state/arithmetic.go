package state

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

/*
	Arithmetic is purely positional: two states are compatible when their field
	counts and sample counts agree, regardless of field names. Flux
	accumulation and the CFL reduction rely on these behaving exactly like
	flat-array arithmetic.
*/

func (q *State) sameShape(r *State) error {
	if q.Type.NumFields() != r.Type.NumFields() || q.nSamp != r.nSamp {
		return &ValueError{fmt.Sprintf(
			"shape mismatch: %dx%d vs %dx%d fields x samples",
			q.Type.NumFields(), q.nSamp, r.Type.NumFields(), r.nSamp)}
	}
	return nil
}

// Add accumulates r into the receiver elementwise.
func (q *State) Add(r *State) error {
	if err := q.sameShape(r); err != nil {
		return err
	}
	floats.Add(q.DataP, r.DataP)
	return nil
}

// Sub subtracts r from the receiver elementwise.
func (q *State) Sub(r *State) error {
	if err := q.sameShape(r); err != nil {
		return err
	}
	floats.Sub(q.DataP, r.DataP)
	return nil
}

// Scale multiplies every element of the receiver by a.
func (q *State) Scale(a float64) {
	floats.Scale(a, q.DataP)
}

// AddScaled accumulates a*r into the receiver elementwise.
func (q *State) AddScaled(a float64, r *State) error {
	if err := q.sameShape(r); err != nil {
		return err
	}
	floats.AddScaled(q.DataP, a, r.DataP)
	return nil
}

// Dot returns the flat inner product of two states of identical shape.
func Dot(a, b *State) (float64, error) {
	if err := a.sameShape(b); err != nil {
		return 0, err
	}
	return floats.Dot(a.DataP, b.DataP), nil
}

// Cross computes the per-sample 3-vector cross product of two states with
// exactly three fields each. The result carries a's layout.
func Cross(a, b *State) (*State, error) {
	if err := a.sameShape(b); err != nil {
		return nil, err
	}
	if a.Type.NumFields() != 3 {
		return nil, &ValueError{fmt.Sprintf(
			"cross product needs 3 fields, got %d", a.Type.NumFields())}
	}
	var (
		n = a.nSamp
		r = a.Type.NewArray(n)
	)
	for s := 0; s < n; s++ {
		a0, a1, a2 := a.At(s, 0), a.At(s, 1), a.At(s, 2)
		b0, b1, b2 := b.At(s, 0), b.At(s, 1), b.At(s, 2)
		r.SetAt(s, 0, a1*b2-a2*b1)
		r.SetAt(s, 1, a2*b0-a0*b2)
		r.SetAt(s, 2, a0*b1-a1*b0)
	}
	return r, nil
}
