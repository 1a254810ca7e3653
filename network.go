package propnet

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Network is a registry of cells and the propagators connecting them,
// plus the work queue that drives those propagators to a fixpoint.
//
// A Network is not safe for concurrent use. Separate networks share no
// state.
type Network struct {
	ID uuid.UUID

	cells  []*Cell
	byName map[string]*Cell
	props  []*Propagator

	queue     []PropagatorID // pending propagators, in order of first alert
	pending   map[PropagatorID]struct{}
	ever      map[PropagatorID]struct{}
	everOrder []PropagatorID

	beliefs  *Beliefs
	logger   *zap.Logger
	maxSteps int
	steps    int
}

// Option configures a Network.
type Option func(*Network)

// WithLogger sets the logger used to trace alerts, firings and
// refinements. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(n *Network) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithMaxSteps bounds the number of propagator firings in a single
// call to Run. Zero, the default, means no bound: termination is then
// up to the caller, who must supply monotonic merges over lattices of
// finite height.
func WithMaxSteps(max int) Option {
	return func(n *Network) {
		n.maxSteps = max
	}
}

// NewNetwork produces an empty Network.
func NewNetwork(opts ...Option) *Network {
	n := &Network{
		ID:      uuid.New(),
		byName:  make(map[string]*Cell),
		pending: make(map[PropagatorID]struct{}),
		ever:    make(map[PropagatorID]struct{}),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.logger = n.logger.With(zap.Stringer("network", n.ID))
	n.beliefs = newBeliefs(n.logger)
	return n
}

// Beliefs returns the belief-revision context of the network's TMS values.
func (n *Network) Beliefs() *Beliefs {
	return n.beliefs
}

// TMS produces a TMS holding the given datums under n's beliefs.
func (n *Network) TMS(data ...Datum) *TMS {
	return NewTMS(n.beliefs, data...)
}

// AddCell adds a new cell with the given name and initial content
// (which may be nil).
func (n *Network) AddCell(name string, content Value) (*Cell, error) {
	if _, ok := n.byName[name]; ok {
		return nil, errors.Wrapf(ErrDuplicateCell, "%q", name)
	}
	c := &Cell{
		ID:      CellID(len(n.cells)),
		Name:    name,
		content: content,
		owner:   n,
	}
	n.cells = append(n.cells, c)
	n.byName[name] = c
	n.logger.Debug("added cell", zap.String("cell", name), zap.Stringer("content", stringer{content}))
	return c, nil
}

// Cell looks up a cell by name.
func (n *Network) Cell(name string) (*Cell, error) {
	c, ok := n.byName[name]
	if !ok {
		return nil, errors.Wrapf(ErrNoSuchCell, "%q", name)
	}
	return c, nil
}

// Cells returns all cells in the order they were added.
func (n *Network) Cells() []*Cell {
	return append([]*Cell(nil), n.cells...)
}

// Propagators returns all propagators in the order they were built.
func (n *Network) Propagators() []*Propagator {
	return append([]*Propagator(nil), n.props...)
}

// Propagator returns the propagator with the given handle, or nil.
func (n *Network) Propagator(id PropagatorID) *Propagator {
	if id < 0 || int(id) >= len(n.props) {
		return nil
	}
	return n.props[id]
}

// Alert schedules the given propagators. A propagator that is already
// pending keeps its place in the queue. Handles that name no
// propagator of n are ignored.
func (n *Network) Alert(ids ...PropagatorID) {
	for _, id := range ids {
		if n.Propagator(id) == nil {
			n.logger.Warn("alert for unknown propagator", zap.Int("id", int(id)))
			continue
		}
		if _, ok := n.ever[id]; !ok {
			n.ever[id] = struct{}{}
			n.everOrder = append(n.everOrder, id)
		}
		if _, ok := n.pending[id]; ok {
			continue
		}
		n.pending[id] = struct{}{}
		n.queue = append(n.queue, id)
		n.logger.Debug("alerted", zap.Stringer("propagator", n.props[id]))
	}
}

// AlertAll schedules every propagator in the network. Use it after
// changing the network's Beliefs so that propagators reading TMS cells
// see the revised worldview.
func (n *Network) AlertAll() {
	for _, p := range n.props {
		n.Alert(p.ID)
	}
}

// Pending returns the queued propagators in the order they will run.
func (n *Network) Pending() []PropagatorID {
	return append([]PropagatorID(nil), n.queue...)
}

// EverAlerted returns every propagator that has ever been alerted, in
// order of first alert.
func (n *Network) EverAlerted() []PropagatorID {
	return append([]PropagatorID(nil), n.everOrder...)
}

// Steps is the total number of propagator firings so far.
func (n *Network) Steps() int {
	return n.steps
}

// Run fires pending propagators, earliest alerted first, until none
// remain. A propagator may alert others, or itself, through the cells
// it writes.
//
// A contradiction stops the run and is returned. Cells refined before
// it keep their content; the contradicted cell keeps its old content.
// The propagators still pending stay queued.
func (n *Network) Run() error {
	var steps int
	for len(n.queue) > 0 {
		if n.maxSteps > 0 && steps >= n.maxSteps {
			return errors.Wrapf(ErrStepLimit, "%d steps, %d propagators pending", steps, len(n.queue))
		}
		id := n.queue[0]
		n.queue = n.queue[1:]
		delete(n.pending, id)
		steps++
		n.steps++

		p := n.props[id]
		if err := p.fire(n); err != nil {
			n.logger.Warn("propagator failed", zap.Stringer("propagator", p), zap.Error(err))
			return errors.Wrapf(err, "propagator %s", p)
		}
	}
	n.logger.Debug("quiescent", zap.Int("steps", steps))
	return nil
}

type stringer struct {
	v Value
}

func (s stringer) String() string {
	return VString(s.v)
}

func (n *Network) String() string {
	return fmt.Sprintf("network %s (%d cells, %d propagators)", n.ID, len(n.cells), len(n.props))
}
