package propnet

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// PropagatorID is a propagator's handle in its network. Work queues
// and neighbor lists hold handles, never the propagators themselves.
type PropagatorID int

// Func computes a propagator's output from the contents of its
// inputs, which are never nil. Returning nil writes nothing.
type Func func(args ...Value) (Value, error)

// Propagator computes the content of one output cell from the content
// of its input cells.
type Propagator struct {
	ID     PropagatorID
	Name   string
	Inputs []CellID
	Output CellID

	fn Func
}

// NewPropagator adds a propagator to net. It becomes a neighbor of
// each input and is alerted immediately, so that it fires on the next
// Run even if no input changes.
func NewPropagator(net *Network, name string, fn Func, inputs []*Cell, output *Cell) (*Propagator, error) {
	if output == nil {
		return nil, errors.Wrapf(ErrNoSuchCell, "propagator %s has no output", name)
	}
	for _, c := range append([]*Cell{output}, inputs...) {
		if c == nil {
			return nil, errors.Wrapf(ErrNoSuchCell, "propagator %s", name)
		}
		if c.owner != net {
			return nil, errors.Wrapf(ErrForeignCell, "propagator %s, cell %s", name, c.Name)
		}
	}

	p := &Propagator{
		ID:     PropagatorID(len(net.props)),
		Name:   name,
		Output: output.ID,
		fn:     fn,
	}
	for _, c := range inputs {
		p.Inputs = append(p.Inputs, c.ID)
	}
	net.props = append(net.props, p)

	for _, c := range inputs {
		if err := c.AddNeighbor(p.ID, net); err != nil {
			return nil, err
		}
	}
	net.Alert(p.ID)
	return p, nil
}

// fire runs p once. Nothing happens unless every input has content.
func (p *Propagator) fire(net *Network) error {
	args := make([]Value, len(p.Inputs))
	for i, id := range p.Inputs {
		v := net.cells[id].Content()
		if v == nil {
			net.logger.Debug("incomplete inputs", zap.Stringer("propagator", p), zap.String("cell", net.cells[id].Name))
			return nil
		}
		args[i] = v
	}
	result, err := p.fn(args...)
	if err != nil {
		return err
	}
	net.logger.Debug("fired", zap.Stringer("propagator", p), zap.Stringer("result", stringer{result}))
	return net.cells[p.Output].AddContent(result, net)
}

func (p *Propagator) String() string {
	return fmt.Sprintf("%s#%d", p.Name, p.ID)
}
