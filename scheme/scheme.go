package scheme

import (
	"fmt"

	"github.com/gofvm/gofvm/state"
)

// ShapeError reports inconsistent leading dimensions across the per-face
// inputs of a scheme operation.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return "scheme shapes: " + e.Reason
}

// Convective computes the Riemann flux across one face per cell, already
// dotted with the outward face normal and scaled by the face surface.
type Convective interface {
	ConvectiveFlux(values, neighValues *state.State, normals [][2]float64,
		surfaces []float64) (*state.State, error)
}

// NonConservative computes the per-face interface coupling contribution, with
// the problem's coupling tensor, averaged between cell and neighbour, already
// contracted in.
type NonConservative interface {
	NonConservativeTerm(values, neighValues *state.State, normals [][2]float64,
		surfaces []float64) (*state.State, error)
}

// CFLEstimator returns the largest stable explicit time step for the given
// cell data and CFL number.
type CFLEstimator interface {
	CFL(values *state.State, volumes []float64, normals [][2]float64,
		surfaces []float64, cflNumber float64) (float64, error)
}

/*
A Scheme composes an optional convective capability with an optional
nonconservative capability into one per-face flux contribution. The
composition order is fixed: the convective flux is evaluated first and the
nonconservative term is added to it afterwards, with no intermediate state
shared between the two evaluations.
*/
type Scheme struct {
	convective      Convective
	nonConservative NonConservative
}

// New builds a scheme from its capabilities. Either may be nil; a nil
// convective capability contributes zero flux.
func New(convective Convective, nonConservative NonConservative) *Scheme {
	return &Scheme{
		convective:      convective,
		nonConservative: nonConservative,
	}
}

// CheckFaceShapes verifies that the per-face inputs agree in their leading
// cell-count dimension.
func CheckFaceShapes(values, neighValues *state.State, normals [][2]float64,
	surfaces []float64) error {
	var (
		n = values.NumSamples()
	)
	if neighValues.NumSamples() != n {
		return &ShapeError{fmt.Sprintf(
			"values has %d cells, neighbour values has %d", n, neighValues.NumSamples())}
	}
	if values.Type.NumFields() != neighValues.Type.NumFields() {
		return &ShapeError{fmt.Sprintf(
			"values has %d fields, neighbour values has %d",
			values.Type.NumFields(), neighValues.Type.NumFields())}
	}
	if len(normals) != n {
		return &ShapeError{fmt.Sprintf(
			"values has %d cells, normals has %d", n, len(normals))}
	}
	if len(surfaces) != n {
		return &ShapeError{fmt.Sprintf(
			"values has %d cells, surfaces has %d", n, len(surfaces))}
	}
	return nil
}

// CheckCellShapes verifies the leading dimension of CFL inputs.
func CheckCellShapes(values *state.State, volumes []float64, normals [][2]float64,
	surfaces []float64) error {
	var (
		n = values.NumSamples()
	)
	if len(volumes) != n {
		return &ShapeError{fmt.Sprintf(
			"values has %d cells, volumes has %d", n, len(volumes))}
	}
	if len(normals) != n {
		return &ShapeError{fmt.Sprintf(
			"values has %d cells, normals has %d", n, len(normals))}
	}
	if len(surfaces) != n {
		return &ShapeError{fmt.Sprintf(
			"values has %d cells, surfaces has %d", n, len(surfaces))}
	}
	return nil
}

// Accumulate returns the total per-face flux contribution: the convective
// flux plus, when composed, the nonconservative term.
func (s *Scheme) Accumulate(values, neighValues *state.State, normals [][2]float64,
	surfaces []float64) (*state.State, error) {
	if err := CheckFaceShapes(values, neighValues, normals, surfaces); err != nil {
		return nil, err
	}
	var (
		fluxes *state.State
		err    error
	)
	if s.convective != nil {
		if fluxes, err = s.convective.ConvectiveFlux(values, neighValues, normals, surfaces); err != nil {
			return nil, err
		}
	} else {
		fluxes = values.Type.NewArray(values.NumSamples())
	}
	if s.nonConservative != nil {
		var nc *state.State
		if nc, err = s.nonConservative.NonConservativeTerm(values, neighValues, normals, surfaces); err != nil {
			return nil, err
		}
		if err = fluxes.Add(nc); err != nil {
			return nil, err
		}
	}
	return fluxes, nil
}

// CFL delegates to the convective capability's estimator. Faces with zero
// local wave speed are excluded from the bound by the estimators.
func (s *Scheme) CFL(values *state.State, volumes []float64, normals [][2]float64,
	surfaces []float64, cflNumber float64) (float64, error) {
	if err := CheckCellShapes(values, volumes, normals, surfaces); err != nil {
		return 0, err
	}
	est, ok := s.convective.(CFLEstimator)
	if !ok {
		return 0, fmt.Errorf("scheme has no CFL estimator")
	}
	return est.CFL(values, volumes, normals, surfaces, cflNumber)
}
