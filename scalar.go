package propnet

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// Scalar is an exact number. Its order is equality: two scalars merge
// only if they are the same number.
type Scalar float64

func (s Scalar) Merge(other Value) (Value, error) {
	switch o := other.(type) {
	case Scalar:
		if s != o {
			return nil, clash(ValueClash, s, o)
		}
		return s, nil
	case Interval:
		if o.IsEmpty() || !o.Contains(PointInterval(float64(s))) {
			return nil, clash(EmptyRange, s, o)
		}
		return s, nil
	case Datum:
		return liftDatum(s).Merge(o)
	case *TMS:
		return o.Merge(s)
	}
	return nil, errors.Wrapf(ErrType, "cannot merge %T into scalar", other)
}

// Equal is true for the same number, as a Scalar or a point Interval.
func (s Scalar) Equal(other Value) bool {
	switch o := other.(type) {
	case Scalar:
		return s == o
	case Interval:
		return o == PointInterval(float64(s))
	}
	return false
}

func (s Scalar) Bytes() []byte {
	return marshal(kindScalar, float64(s))
}

func (s Scalar) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}
