package propnet

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Interval is a closed range of reals. A narrower interval is more
// specific; merging two intervals intersects them.
//
// The arithmetic methods use naive endpoint propagation and assume
// non-negative operands for Mul, Div and Square. Division by an
// interval containing zero is not guarded here; the lifted Div
// reports the empty result as ErrDomain.
type Interval struct {
	Lo, Hi float64
}

// PointInterval is the interval [x, x].
func PointInterval(x float64) Interval {
	return Interval{Lo: x, Hi: x}
}

// IsEmpty tells whether iv contains no points. An interval with a NaN
// endpoint is empty.
func (iv Interval) IsEmpty() bool {
	return !(iv.Lo <= iv.Hi)
}

// Intersect returns the intersection of iv and other, which may be empty.
func (iv Interval) Intersect(other Interval) Interval {
	return Interval{Lo: math.Max(iv.Lo, other.Lo), Hi: math.Min(iv.Hi, other.Hi)}
}

// Contains tells whether other lies entirely within iv.
func (iv Interval) Contains(other Interval) bool {
	return iv.Lo <= other.Lo && other.Hi <= iv.Hi
}

// Width is Hi-Lo.
func (iv Interval) Width() float64 {
	return iv.Hi - iv.Lo
}

func (iv Interval) Merge(other Value) (Value, error) {
	var o Interval
	switch other := other.(type) {
	case Interval:
		o = other
	case Scalar:
		o = PointInterval(float64(other))
	case Datum:
		return liftDatum(iv).Merge(other)
	case *TMS:
		return other.Merge(iv)
	default:
		return nil, errors.Wrapf(ErrType, "cannot merge %T into interval", other)
	}
	if iv.IsEmpty() || o.IsEmpty() {
		return nil, clash(EmptyRange, iv, o)
	}
	m := iv.Intersect(o)
	if m == iv {
		return iv, nil
	}
	if m.IsEmpty() {
		return nil, clash(EmptyRange, iv, o)
	}
	return m, nil
}

// Equal is true for the same range. A point interval also equals the
// Scalar at that point.
func (iv Interval) Equal(other Value) bool {
	switch o := other.(type) {
	case Interval:
		return iv == o
	case Scalar:
		return iv == PointInterval(float64(o))
	}
	return false
}

func (iv Interval) Bytes() []byte {
	return marshal(kindInterval, iv)
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s]", fmtFloat(iv.Lo), fmtFloat(iv.Hi))
}

func (iv Interval) Add(o Interval) Interval {
	return Interval{Lo: iv.Lo + o.Lo, Hi: iv.Hi + o.Hi}
}

func (iv Interval) Sub(o Interval) Interval {
	return Interval{Lo: iv.Lo - o.Hi, Hi: iv.Hi - o.Lo}
}

func (iv Interval) Mul(o Interval) Interval {
	return Interval{Lo: iv.Lo * o.Lo, Hi: iv.Hi * o.Hi}
}

func (iv Interval) Div(o Interval) Interval {
	return Interval{Lo: iv.Lo / o.Hi, Hi: iv.Hi / o.Lo}
}

func (iv Interval) Square() Interval {
	return Interval{Lo: iv.Lo * iv.Lo, Hi: iv.Hi * iv.Hi}
}

// Sqrt is the non-negative square root. The negative part of iv is
// ignored; if iv is entirely negative the result is empty.
func (iv Interval) Sqrt() Interval {
	return Interval{Lo: math.Sqrt(math.Max(iv.Lo, 0)), Hi: math.Sqrt(iv.Hi)}
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
