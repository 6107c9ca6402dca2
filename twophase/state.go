package twophase

import (
	"fmt"

	"github.com/gofvm/gofvm/euler"
	"github.com/gofvm/gofvm/state"
)

// Phase selects one of the two phases of the mixture.
type Phase int

const (
	Phase1 Phase = iota
	Phase2
)

var Phases = [2]Phase{Phase1, Phase2}

func (p Phase) String() string {
	return []string{"Phase1", "Phase2"}[int(p)]
}

// suffix tags a single-phase field name with its phase.
func (p Phase) suffix() string {
	return []string{"1", "2"}[int(p)]
}

/*
The two-phase state is the mixture volume fraction followed by a full
single-phase Euler layout per phase:

	alpha,
	rho1, rhoU1, rhoV1, rhoE1, rhoe1, U1, V1, p1, c1,
	rho2, rhoU2, rhoV2, rhoE2, rhoe2, U2, V2, p2, c2

19 fields in total. Positional index of phase field f is
1 + phase*euler.NumFields + f.
*/
const (
	Alpha     = 0
	NumFields = 1 + 2*euler.NumFields
)

var fields = state.MustNew(allFieldNames()...)

func allFieldNames() (names []string) {
	names = []string{"alpha"}
	for _, p := range Phases {
		names = append(names, PhaseFields(p)...)
	}
	return
}

// Fields returns the two-phase state layout.
func Fields() state.StateType { return fields }

// PhaseFields returns the names of one phase's fields in the parent layout,
// in single-phase order.
func PhaseFields(p Phase) (names []string) {
	for _, f := range euler.FieldNames() {
		names = append(names, f+p.suffix())
	}
	return
}

// PhaseConservativeFields returns the names of one phase's conserved fields
// in the parent layout.
func PhaseConservativeFields(p Phase) (names []string) {
	for _, f := range euler.ConservativeFields() {
		names = append(names, f+p.suffix())
	}
	return
}

// PhaseIndex maps a single-phase positional field index into the parent
// two-phase layout.
func PhaseIndex(p Phase, field int) int {
	return 1 + int(p)*euler.NumFields + field
}

// GetPhase extracts one phase of q as a standalone single-phase Euler state,
// directly usable by the single-phase algorithms.
func GetPhase(q *state.State, p Phase) (*state.State, error) {
	proj, err := q.Subset(PhaseFields(p)...)
	if err != nil {
		return nil, err
	}
	return proj.Extract(euler.FieldNames()...)
}

// SetPhaseConservative writes a 4-field conserved update for one phase back
// into the parent state.
func SetPhaseConservative(q *state.State, p Phase, fs *state.State) error {
	if fs.Type.NumFields() != len(euler.ConservativeFields()) {
		return fmt.Errorf("expected a %d-field conservative state, got %d fields",
			len(euler.ConservativeFields()), fs.Type.NumFields())
	}
	proj, err := q.Subset(PhaseConservativeFields(p)...)
	if err != nil {
		return err
	}
	return proj.SetInto(fs)
}
