package state

import (
	"fmt"
)

/*
A Projection is a live window onto a subset of a parent state's fields. It
owns no storage: reads and writes go straight through to the parent's
DataP, so there is never a second copy to drift out of sync. The
conservative-variable subset used by Rusanov-type jump terms is the typical
client.
*/
type Projection struct {
	parent *State
	fields []int // positions in the parent layout, in projection order
	names  []string
}

// Subset builds a live projection over the named fields, in the given order.
func (q *State) Subset(names ...string) (*Projection, error) {
	var (
		p = &Projection{
			parent: q,
			fields: make([]int, len(names)),
			names:  make([]string, len(names)),
		}
	)
	if len(names) == 0 {
		return nil, &ValueError{"projection needs at least one field"}
	}
	for k, name := range names {
		i, ok := q.Type.IndexOf(name)
		if !ok {
			return nil, &ValueError{fmt.Sprintf("unknown field name %q", name)}
		}
		p.fields[k] = i
		p.names[k] = name
	}
	return p, nil
}

func (p *Projection) NumFields() int  { return len(p.fields) }
func (p *Projection) NumSamples() int { return p.parent.nSamp }

// At reads projected field k of one sample from the parent storage.
func (p *Projection) At(sample, k int) float64 {
	return p.parent.At(sample, p.fields[k])
}

// SetAt writes projected field k of one sample into the parent storage.
func (p *Projection) SetAt(sample, k int, val float64) {
	p.parent.SetAt(sample, p.fields[k], val)
}

// Extract copies the projected fields into a standalone state with its own
// layout. Optional renames relabel the fields of the result, which is how a
// phase sub-view of a two-phase state becomes a legal single-phase state.
func (p *Projection) Extract(renames ...string) (r *State, err error) {
	var (
		names = p.names
		n     = p.parent.nSamp
	)
	if len(renames) != 0 {
		if len(renames) != len(p.fields) {
			return nil, &ValueError{fmt.Sprintf(
				"got %d renames for %d projected fields", len(renames), len(p.fields))}
		}
		names = renames
	}
	st, err := New(names...)
	if err != nil {
		return nil, err
	}
	r = st.NewArray(n)
	for k, i := range p.fields {
		copy(r.DataP[k*n:(k+1)*n], p.parent.DataP[i*n:(i+1)*n])
	}
	return
}

// SetInto writes a state of the projection's shape back into the parent's
// projected fields. The source field order must match the projection order;
// names are not consulted.
func (p *Projection) SetInto(src *State) error {
	var (
		n = p.parent.nSamp
	)
	if src.Type.NumFields() != len(p.fields) {
		return &ValueError{fmt.Sprintf(
			"source has %d fields, projection has %d", src.Type.NumFields(), len(p.fields))}
	}
	if src.nSamp != n {
		return &ValueError{fmt.Sprintf(
			"source has %d samples, parent has %d", src.nSamp, n)}
	}
	for k, i := range p.fields {
		copy(p.parent.DataP[i*n:(i+1)*n], src.DataP[k*n:(k+1)*n])
	}
	return nil
}
