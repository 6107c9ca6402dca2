package state

import (
	"fmt"
)

// ConfigurationError reports a malformed state type definition, such as
// duplicate or empty field names.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "state configuration: " + e.Reason
}

// ValueError reports a mismatch between supplied values and the field layout
// of a state type.
type ValueError struct {
	Reason string
}

func (e *ValueError) Error() string {
	return "state values: " + e.Reason
}

/*
A StateType fixes the ordered field layout of a physical state vector once,
at configuration time. Every State built from the same StateType shares the
same name -> position mapping, so hot loops can address fields purely by
position while setup and diagnostic code addresses them by name.
*/
type StateType struct {
	fields []string
	index  map[string]int
}

// New builds a StateType from an ordered list of unique field names.
func New(fields ...string) (StateType, error) {
	var (
		st = StateType{
			fields: make([]string, len(fields)),
			index:  make(map[string]int, len(fields)),
		}
	)
	if len(fields) == 0 {
		return StateType{}, &ConfigurationError{"a state type needs at least one field"}
	}
	for i, name := range fields {
		if len(name) == 0 {
			return StateType{}, &ConfigurationError{fmt.Sprintf("field %d has an empty name", i)}
		}
		if _, dup := st.index[name]; dup {
			return StateType{}, &ConfigurationError{fmt.Sprintf("duplicate field name %q", name)}
		}
		st.fields[i] = name
		st.index[name] = i
	}
	return st, nil
}

// MustNew is New for layouts fixed at package init, where a bad definition is
// a programming error.
func MustNew(fields ...string) (st StateType) {
	var (
		err error
	)
	if st, err = New(fields...); err != nil {
		panic(err)
	}
	return
}

func (st StateType) NumFields() int { return len(st.fields) }

// Fields returns a copy of the ordered field names.
func (st StateType) Fields() (names []string) {
	names = make([]string, len(st.fields))
	copy(names, st.fields)
	return
}

// IndexOf maps a field name to its fixed position in the layout.
func (st StateType) IndexOf(name string) (i int, ok bool) {
	i, ok = st.index[name]
	return
}

/*
State holds NumSamples samples of a StateType layout in one flat slice,
field major: field f of sample s lives at DataP[f*NumSamples + s]. A field
is therefore a contiguous run of NumSamples values, which is the layout the
flux kernels and the EOS closures traverse.

A scalar state is simply NumSamples == 1. Named and positional access share
DataP: there is exactly one copy of every value.
*/
type State struct {
	Type  StateType
	DataP []float64
	nSamp int
}

// NewArray allocates a zeroed dense array of nSamples samples.
func (st StateType) NewArray(nSamples int) (q *State) {
	if nSamples < 1 {
		panic(fmt.Errorf("state array needs at least one sample, got %d", nSamples))
	}
	q = &State{
		Type:  st,
		DataP: make([]float64, st.NumFields()*nSamples),
		nSamp: nSamples,
	}
	return
}

// Of constructs a scalar state from positional values, one per field in layout
// order.
func (st StateType) Of(values ...float64) (*State, error) {
	if len(values) != st.NumFields() {
		return nil, &ValueError{fmt.Sprintf(
			"got %d positional values for %d fields", len(values), st.NumFields())}
	}
	q := st.NewArray(1)
	copy(q.DataP, values)
	return q, nil
}

// FromMap constructs a scalar state from named values. Every field of the
// layout must be present, and no extra names are allowed.
func (st StateType) FromMap(values map[string]float64) (*State, error) {
	if len(values) != st.NumFields() {
		return nil, &ValueError{fmt.Sprintf(
			"got %d named values for %d fields", len(values), st.NumFields())}
	}
	q := st.NewArray(1)
	for name, val := range values {
		i, ok := st.IndexOf(name)
		if !ok {
			return nil, &ValueError{fmt.Sprintf("unknown field name %q", name)}
		}
		q.DataP[i] = val
	}
	return q, nil
}

func (q *State) NumSamples() int { return q.nSamp }

// At reads field i of one sample by position.
func (q *State) At(sample, i int) float64 {
	return q.DataP[i*q.nSamp+sample]
}

// SetAt writes field i of one sample by position.
func (q *State) SetAt(sample, i int, val float64) {
	q.DataP[i*q.nSamp+sample] = val
}

// FieldView returns the contiguous storage of one named field across all
// samples. The slice aliases DataP, so writes through it are visible to every
// other view of the state.
func (q *State) FieldView(name string) ([]float64, error) {
	i, ok := q.Type.IndexOf(name)
	if !ok {
		return nil, &ValueError{fmt.Sprintf("unknown field name %q", name)}
	}
	return q.DataP[i*q.nSamp : (i+1)*q.nSamp], nil
}

// Get reads a named field of a scalar state.
func (q *State) Get(name string) (float64, error) {
	f, err := q.FieldView(name)
	if err != nil {
		return 0, err
	}
	return f[0], nil
}

// Set writes a named field of a scalar state.
func (q *State) Set(name string, val float64) error {
	f, err := q.FieldView(name)
	if err != nil {
		return err
	}
	f[0] = val
	return nil
}

// Copy returns a standalone deep copy sharing nothing with the receiver.
func (q *State) Copy() (r *State) {
	r = q.Type.NewArray(q.nSamp)
	copy(r.DataP, q.DataP)
	return
}

// Gather builds a new state array whose sample s is the receiver's sample
// indices[s]. Used to assemble neighbour values from a cell connectivity.
func (q *State) Gather(indices []int) (r *State) {
	var (
		nf = q.Type.NumFields()
		n  = len(indices)
	)
	r = q.Type.NewArray(n)
	for f := 0; f < nf; f++ {
		src := q.DataP[f*q.nSamp : (f+1)*q.nSamp]
		dst := r.DataP[f*n : (f+1)*n]
		for s, ind := range indices {
			dst[s] = src[ind]
		}
	}
	return
}
