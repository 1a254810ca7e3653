package propnet

import (
	"github.com/cockroachdb/errors"
)

// Datum is a value together with the assumptions that justify it.
// Merging and arithmetic act on the underlying values while the
// supports are combined.
type Datum struct {
	Value   Value
	Support Support
}

// NewDatum is shorthand for Datum{Value: v, Support: NewSupport(labels...)}.
func NewDatum(v Value, labels ...string) Datum {
	return Datum{Value: v, Support: NewSupport(labels...)}
}

// liftDatum treats v as a Datum, giving plain values an empty support.
func liftDatum(v Value) Datum {
	if d, ok := v.(Datum); ok {
		return d
	}
	return Datum{Value: v}
}

// Merge combines d with other. When one datum's value already
// subsumes the other's, that datum is returned as is; between two
// equally specific values the one with the smaller support wins.
// Otherwise a new datum is synthesized from the merged value and the
// union of both supports.
func (d Datum) Merge(other Value) (Value, error) {
	if t, ok := other.(*TMS); ok {
		return t.Merge(d)
	}
	o := liftDatum(other)
	if d.Value == nil || o.Value == nil {
		return nil, errors.Wrap(ErrType, "datum without a value")
	}

	vm, err := d.Value.Merge(o.Value)
	if err != nil {
		return nil, err
	}

	switch {
	case VEqual(vm, d.Value):
		if Implies(o.Value, vm) && o.Support.MoreInformativeThan(d.Support) {
			return o, nil
		}
		return d, nil

	case VEqual(vm, o.Value):
		return o, nil
	}

	return Datum{Value: vm, Support: d.Support.Union(o.Support)}, nil
}

// Subsumes tells whether d makes other redundant: d's value is at
// least as specific and d depends on no more assumptions.
func (d Datum) Subsumes(other Datum) bool {
	return Implies(d.Value, other.Value) && d.Support.SubsetOf(other.Support)
}

func (d Datum) Equal(other Value) bool {
	o, ok := other.(Datum)
	return ok && VEqual(d.Value, o.Value) && d.Support.Equal(o.Support)
}

func (d Datum) Bytes() []byte {
	var vb []byte
	if d.Value != nil {
		vb = d.Value.Bytes()
	}
	return marshal(kindDatum, struct {
		V []byte
		S []string
	}{vb, d.Support})
}

func (d Datum) String() string {
	if len(d.Support) == 0 {
		return VString(d.Value)
	}
	return VString(d.Value) + " because of " + d.Support.String()
}
