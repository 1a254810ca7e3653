package propnet

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Arithmetic on cell values.
//
// Scalars combine as ordinary numbers. If any operand is an Interval,
// scalars are promoted to point intervals. Datum operands are unwrapped,
// the operation is applied to their values, and the result carries the
// union of their supports (a plain operand has empty support). A *TMS
// operand contributes its strongest consequence under its beliefs and
// the result is a single-datum TMS; a TMS with nothing believed counts
// as absent. A nil operand yields a nil result. A result with no
// meaning, such as the square root of a negative number, is ErrDomain.

type numOp struct {
	name     string
	arity    int
	scalar   func([]float64) float64
	interval func([]Interval) Interval
}

var (
	opAdd = numOp{
		name:     "add",
		arity:    2,
		scalar:   func(x []float64) float64 { return x[0] + x[1] },
		interval: func(x []Interval) Interval { return x[0].Add(x[1]) },
	}
	opSub = numOp{
		name:     "sub",
		arity:    2,
		scalar:   func(x []float64) float64 { return x[0] - x[1] },
		interval: func(x []Interval) Interval { return x[0].Sub(x[1]) },
	}
	opMul = numOp{
		name:     "mul",
		arity:    2,
		scalar:   func(x []float64) float64 { return x[0] * x[1] },
		interval: func(x []Interval) Interval { return x[0].Mul(x[1]) },
	}
	opDiv = numOp{
		name:     "div",
		arity:    2,
		scalar:   func(x []float64) float64 { return x[0] / x[1] },
		interval: func(x []Interval) Interval { return x[0].Div(x[1]) },
	}
	opSquare = numOp{
		name:     "square",
		arity:    1,
		scalar:   func(x []float64) float64 { return x[0] * x[0] },
		interval: func(x []Interval) Interval { return x[0].Square() },
	}
	opSqrt = numOp{
		name:     "sqrt",
		arity:    1,
		scalar:   func(x []float64) float64 { return math.Sqrt(x[0]) },
		interval: func(x []Interval) Interval { return x[0].Sqrt() },
	}
)

func Add(a, b Value) (Value, error) { return opAdd.apply(a, b) }
func Sub(a, b Value) (Value, error) { return opSub.apply(a, b) }
func Mul(a, b Value) (Value, error) { return opMul.apply(a, b) }
func Div(a, b Value) (Value, error) { return opDiv.apply(a, b) }
func Square(a Value) (Value, error) { return opSquare.apply(a) }
func Sqrt(a Value) (Value, error)   { return opSqrt.apply(a) }

func (op numOp) apply(args ...Value) (Value, error) {
	if len(args) != op.arity {
		return nil, errors.Wrapf(ErrArity, "%s: got %d operands, want %d", op.name, len(args), op.arity)
	}

	var (
		hasTMS, hasDatum bool
		allScalar        = true
	)
	for _, a := range args {
		switch a := a.(type) {
		case nil:
			return nil, nil
		case *TMS:
			if a == nil {
				return nil, nil
			}
			hasTMS = true
		case Datum:
			hasDatum = true
		case Scalar:
		case Interval:
			allScalar = false
		default:
			return nil, errors.Wrapf(ErrType, "%s: %T", op.name, a)
		}
	}

	switch {
	case hasTMS:
		return op.applyTMS(args)
	case hasDatum:
		return op.applyDatum(args)
	case allScalar:
		xs := make([]float64, len(args))
		for i, a := range args {
			xs[i] = float64(a.(Scalar))
		}
		r := op.scalar(xs)
		if math.IsNaN(r) {
			return nil, errors.Wrapf(ErrDomain, "%s%v", op.name, xs)
		}
		return Scalar(r), nil
	}

	ivs := make([]Interval, len(args))
	for i, a := range args {
		switch a := a.(type) {
		case Scalar:
			ivs[i] = PointInterval(float64(a))
		case Interval:
			ivs[i] = a
		}
	}
	r := op.interval(ivs)
	if r.IsEmpty() {
		return nil, errors.Wrapf(ErrDomain, "%s%v = %s", op.name, ivs, r)
	}
	return r, nil
}

func (op numOp) applyDatum(args []Value) (Value, error) {
	var (
		vals    = make([]Value, len(args))
		support Support
	)
	for i, a := range args {
		d := liftDatum(a)
		vals[i] = d.Value
		support = support.Union(d.Support)
	}
	v, err := op.apply(vals...)
	if err != nil || v == nil {
		return nil, err
	}
	return Datum{Value: v, Support: support}, nil
}

func (op numOp) applyTMS(args []Value) (Value, error) {
	var (
		beliefs *Beliefs
		vals    = make([]Value, len(args))
	)
	for i, a := range args {
		t, ok := a.(*TMS)
		if !ok {
			vals[i] = a
			continue
		}
		if beliefs == nil {
			beliefs = t.beliefs
		}
		d, ok := t.StrongestConsequence()
		if !ok {
			return nil, nil
		}
		vals[i] = d
	}
	v, err := op.apply(vals...)
	if err != nil || v == nil {
		return nil, err
	}
	return NewTMS(beliefs, liftDatum(v)), nil
}
