package euler

import (
	"github.com/gofvm/gofvm/state"
)

// Positional field indices for the single-phase Euler state. The first four
// fields are the conserved variables; the rest are auxiliary quantities kept
// consistent by the EOS.
const (
	Rho = iota
	RhoU
	RhoV
	RhoE
	Rhoe // internal energy times density
	U
	V
	P
	C // sound speed
	NumFields
)

var (
	fieldNames = []string{"rho", "rhoU", "rhoV", "rhoE", "rhoe", "U", "V", "p", "c"}
	fields     = state.MustNew(fieldNames...)
)

// Fields returns the single-phase Euler state layout.
func Fields() state.StateType { return fields }

// FieldNames returns the ordered field names of the layout.
func FieldNames() []string { return fields.Fields() }

// ConservativeFields names the conserved subset: density, momentum, energy.
func ConservativeFields() []string {
	return []string{"rho", "rhoU", "rhoV", "rhoE"}
}

// Conservative returns the live conserved-variable projection of q.
func Conservative(q *state.State) (*state.Projection, error) {
	return q.Subset(ConservativeFields()...)
}
