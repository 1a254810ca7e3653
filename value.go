package propnet

import (
	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-xdr/xdr"
)

// Value is the type of information held in a cell.
//
// Merge must be commutative, associative and idempotent, and its
// result must never be less specific than either input. When the two
// values cannot be reconciled Merge returns a *Contradiction.
type Value interface {
	Merge(Value) (Value, error)
	Equal(Value) bool
	Bytes() []byte
	String() string
}

// Implies tells whether a is at least as specific as b, i.e. merging
// b into a leaves a unchanged. A contradiction implies nothing.
func Implies(a, b Value) bool {
	m, err := a.Merge(b)
	if err != nil {
		return false
	}
	return VEqual(m, a)
}

// VEqual tells whether two possibly-nil values are equal.
func VEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// VString is like v.String() but tolerates nil.
func VString(v Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}

// Value kinds, used as the leading tag of Bytes encodings.
const (
	kindScalar uint32 = iota + 1
	kindInterval
	kindDatum
	kindTMS
)

// marshal panics if v is not xdr-encodable. Every built-in value
// encodes only numbers, strings and byte slices.
func marshal(kind uint32, v interface{}) []byte {
	k, err := xdr.Marshal(kind)
	if err != nil {
		panic(errors.Wrap(err, "encoding value kind"))
	}
	b, err := xdr.Marshal(v)
	if err != nil {
		panic(errors.Wrapf(err, "encoding %T", v))
	}
	return append(k, b...)
}
