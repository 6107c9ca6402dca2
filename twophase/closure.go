package twophase

import (
	"github.com/gofvm/gofvm/euler"
	"github.com/gofvm/gofvm/state"
)

// EOS pairs one ideal-gas closure per phase.
type EOS struct {
	Phase1, Phase2 euler.EOS
}

func NewEOS(gamma1, gamma2 float64) EOS {
	return EOS{
		Phase1: euler.NewEOS(gamma1),
		Phase2: euler.NewEOS(gamma2),
	}
}

// Phase returns the closure of one phase.
func (e EOS) Phase(p Phase) euler.EOS {
	if p == Phase1 {
		return e.Phase1
	}
	return e.Phase2
}

// Update refreshes the auxiliary fields of both phases in place.
func (e EOS) Update(q *state.State) error {
	for _, p := range Phases {
		phase, err := GetPhase(q, p)
		if err != nil {
			return err
		}
		if err = e.Phase(p).Update(phase); err != nil {
			return err
		}
		proj, err := q.Subset(PhaseFields(p)...)
		if err != nil {
			return err
		}
		if err = proj.SetInto(phase); err != nil {
			return err
		}
	}
	return nil
}

// Closure supplies the problem-specific coupling of the two phases: the
// interfacial velocity driving the upwind selection and the nonconservative
// coupling tensor B, both pure functions of the state evaluable per sample.
type Closure interface {
	// InterfacialVelocity returns the interface velocity vector at one sample.
	InterfacialVelocity(q *state.State, sample int) (u, v float64)
	// B returns the coupling tensor at one sample, indexed
	// [field][field][direction] with direction in {x, y}.
	B(q *state.State, sample int) [][][2]float64
}
