package euler

import (
	"fmt"
	"math"

	"github.com/gofvm/gofvm/state"
)

type FlowFunction uint8

func (pf FlowFunction) String() string {
	strings := []string{
		"Density",
		"XMomentum",
		"YMomentum",
		"Energy",
		"Static Pressure",
		"Sound Speed",
		"XVelocity",
		"YVelocity",
		"Internal Energy",
		"Enthalpy",
	}
	return strings[int(pf)]
}

const (
	Density FlowFunction = iota
	XMomentum
	YMomentum
	Energy
	StaticPressure // 4
	SoundSpeed     // 5
	XVelocity      // 6
	YVelocity      // 7
	InternalEnergy // 8
	Enthalpy       // 9
)

// EOS is the ideal gas closure for a single phase. All quantities derive from
// the four conserved variables.
type EOS struct {
	Gamma float64
}

func NewEOS(Gamma float64) (e EOS) {
	if Gamma <= 1 {
		err := fmt.Errorf("ideal gas needs Gamma > 1, got %v", Gamma)
		panic(err)
	}
	e = EOS{Gamma: Gamma}
	return
}

func (e EOS) GetFlowFunction(rho, rhoU, rhoV, rhoE float64, pf FlowFunction) (f float64) {
	var (
		GM1   = e.Gamma - 1.
		oorho = 1. / rho
		q, p  float64
	)
	// Calculate q if needed
	switch pf {
	case StaticPressure, SoundSpeed, InternalEnergy, Enthalpy:
		q = 0.5 * (rhoU*rhoU + rhoV*rhoV) * oorho
	}
	// Calculate p if needed
	switch pf {
	case SoundSpeed, Enthalpy:
		p = GM1 * (rhoE - q)
	}

	switch pf {
	case Density:
		f = rho
	case XMomentum:
		f = rhoU
	case YMomentum:
		f = rhoV
	case Energy:
		f = rhoE
	case StaticPressure:
		f = GM1 * (rhoE - q)
	case SoundSpeed:
		f = math.Sqrt(math.Abs(e.Gamma * p * oorho))
	case XVelocity:
		f = rhoU * oorho
	case YVelocity:
		f = rhoV * oorho
	case InternalEnergy:
		f = rhoE - q
	case Enthalpy:
		f = (rhoE + p) * oorho
	}
	return
}

// TotalEnergy returns rhoE from primitive variables, used for initialization.
func (e EOS) TotalEnergy(rho, u, v, p float64) float64 {
	return p/(e.Gamma-1.) + 0.5*rho*(u*u+v*v)
}

// Update recomputes the auxiliary fields (rhoe, U, V, p, c) of every sample
// from the conserved ones, in place.
func (e EOS) Update(q *state.State) error {
	if q.Type.NumFields() != NumFields {
		return fmt.Errorf("expected a %d-field Euler state, got %d fields",
			NumFields, q.Type.NumFields())
	}
	var (
		n = q.NumSamples()
	)
	for s := 0; s < n; s++ {
		rho, rhoU, rhoV, rhoE := q.At(s, Rho), q.At(s, RhoU), q.At(s, RhoV), q.At(s, RhoE)
		q.SetAt(s, Rhoe, e.GetFlowFunction(rho, rhoU, rhoV, rhoE, InternalEnergy))
		q.SetAt(s, U, e.GetFlowFunction(rho, rhoU, rhoV, rhoE, XVelocity))
		q.SetAt(s, V, e.GetFlowFunction(rho, rhoU, rhoV, rhoE, YVelocity))
		q.SetAt(s, P, e.GetFlowFunction(rho, rhoU, rhoV, rhoE, StaticPressure))
		q.SetAt(s, C, e.GetFlowFunction(rho, rhoU, rhoV, rhoE, SoundSpeed))
	}
	return nil
}
