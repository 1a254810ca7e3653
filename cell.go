package propnet

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// CellID is a cell's index in its network.
type CellID int

// Cell is a named slot whose content only ever becomes more specific.
// Its content is changed only through AddContent.
type Cell struct {
	ID   CellID
	Name string

	content   Value
	neighbors []PropagatorID
	owner     *Network
}

// Content returns the cell's current content, or nil if nothing is
// known yet.
func (c *Cell) Content() Value {
	return c.content
}

// Neighbors returns the propagators that read this cell.
func (c *Cell) Neighbors() []PropagatorID {
	return append([]PropagatorID(nil), c.neighbors...)
}

// AddContent merges increment into the cell. A nil increment does
// nothing. If the merge adds information, the cell's neighbors are
// alerted on net; if it adds nothing, nobody is alerted. A merge that
// fails leaves the content unchanged and returns the error, which is a
// *Contradiction naming this cell when the values clash. net must be
// the network the cell belongs to.
func (c *Cell) AddContent(increment Value, net *Network) error {
	if net != c.owner {
		return errors.Wrapf(ErrForeignCell, "adding content to cell %s", c.Name)
	}
	if increment == nil {
		return nil
	}
	if c.content == nil {
		c.content = increment
		net.logger.Debug("cell content", zap.String("cell", c.Name), zap.Stringer("content", increment))
		net.Alert(c.neighbors...)
		return nil
	}

	merged, err := c.content.Merge(increment)
	if err != nil {
		if ct, ok := IsContradiction(err); ok {
			ct.Cell = c.Name
			net.logger.Warn("contradiction", zap.String("cell", c.Name), zap.Error(ct))
			return err
		}
		return errors.Wrapf(err, "merging into cell %s", c.Name)
	}
	if VEqual(merged, c.content) {
		return nil
	}
	c.content = merged
	net.logger.Debug("cell refined", zap.String("cell", c.Name), zap.Stringer("content", merged))
	net.Alert(c.neighbors...)
	return nil
}

// AddNeighbor registers a propagator as a reader of this cell. The
// first registration also alerts it, so that it can use content the
// cell already has. The propagator must belong to the cell's network.
func (c *Cell) AddNeighbor(id PropagatorID, net *Network) error {
	if net != c.owner {
		return errors.Wrapf(ErrForeignCell, "neighbor of cell %s", c.Name)
	}
	if net.Propagator(id) == nil {
		return errors.Errorf("no propagator %d in %s", id, net)
	}
	for _, have := range c.neighbors {
		if have == id {
			return nil
		}
	}
	c.neighbors = append(c.neighbors, id)
	net.Alert(id)
	return nil
}

func (c *Cell) String() string {
	return c.Name + ": " + VString(c.content)
}
