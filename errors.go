package propnet

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrContradiction matches every *Contradiction via errors.Is.
	ErrContradiction = errors.New("contradiction")

	ErrDuplicateCell = errors.New("duplicate cell")
	ErrNoSuchCell    = errors.New("no such cell")
	ErrForeignCell   = errors.New("cell belongs to another network")
	ErrArity         = errors.New("wrong number of arguments")
	ErrType          = errors.New("unsupported operand type")
	ErrDomain        = errors.New("operand outside the domain of the operation")

	// ErrStepLimit is returned by Run when the network was built with
	// WithMaxSteps and the limit was reached before quiescence.
	ErrStepLimit = errors.New("step limit reached")
)

// ContradictionKind says why two values could not be merged.
type ContradictionKind int

const (
	// ValueClash is two unequal scalars.
	ValueClash ContradictionKind = iota + 1

	// EmptyRange is an interval intersection with Lo > Hi.
	EmptyRange
)

func (k ContradictionKind) String() string {
	switch k {
	case ValueClash:
		return "value clash"
	case EmptyRange:
		return "empty range"
	}
	return fmt.Sprintf("ContradictionKind(%d)", int(k))
}

// Contradiction is the error produced by a merge that cannot yield a
// consistent value. Cell is filled in by Cell.AddContent.
type Contradiction struct {
	Kind     ContradictionKind
	Cell     string
	Existing Value
	Incoming Value
}

func (c *Contradiction) Error() string {
	if c.Cell == "" {
		return fmt.Sprintf("%s: %s vs. %s", c.Kind, VString(c.Existing), VString(c.Incoming))
	}
	return fmt.Sprintf("%s in cell %s: %s vs. %s", c.Kind, c.Cell, VString(c.Existing), VString(c.Incoming))
}

// Is makes errors.Is(err, ErrContradiction) true for any contradiction.
func (c *Contradiction) Is(target error) bool {
	return target == ErrContradiction
}

func clash(kind ContradictionKind, existing, incoming Value) error {
	return &Contradiction{Kind: kind, Existing: existing, Incoming: incoming}
}

// IsContradiction reports whether err is or wraps a *Contradiction,
// returning it if so.
func IsContradiction(err error) (*Contradiction, bool) {
	var c *Contradiction
	if errors.As(err, &c) {
		return c, true
	}
	return nil, false
}
