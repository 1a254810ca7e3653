// Package netfile reads propagator networks described in TOML.
//
// A description names the kind of content its cells hold (the layer),
// declares cells with optional initial content, wires them with
// constraints, and lists phases: batches of facts and belief changes,
// each followed by a run of the network and a report of chosen cells.
//
//	layer = "interval"
//
//	[[cells]]
//	name = "g"
//	lo = 9.789
//	hi = 9.832
//
//	[[constraints]]
//	kind = "product"
//	cells = ["g", "t^2", "gt^2"]
//
//	[[phases]]
//	name = "fall time"
//	report = ["building_height"]
//
//	  [[phases.facts]]
//	  cell = "fall_time"
//	  lo = 2.9
//	  hi = 3.1
//	  support = ["fall_time"]
package netfile

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/bobg/propnet"
)

// Layer is the kind of content held by every cell of a network.
type Layer string

const (
	LayerScalar   Layer = "scalar"
	LayerInterval Layer = "interval"
	LayerDatum    Layer = "datum"
	LayerTMS      Layer = "tms"
)

var ErrInvalid = errors.New("invalid network description")

// File is a parsed network description.
type File struct {
	Layer       Layer        `toml:"layer"`
	Cells       []CellSpec   `toml:"cells"`
	Constraints []Constraint `toml:"constraints"`
	Phases      []Phase      `toml:"phases"`
}

// Quantity is a number or range, optionally justified by assumptions.
// Value gives an exact number; Lo and Hi give a range.
type Quantity struct {
	Value   *float64 `toml:"value"`
	Lo      *float64 `toml:"lo"`
	Hi      *float64 `toml:"hi"`
	Support []string `toml:"support"`
}

// IsZero tells whether q specifies nothing.
func (q Quantity) IsZero() bool {
	return q.Value == nil && q.Lo == nil && q.Hi == nil
}

type CellSpec struct {
	Name string `toml:"name"`
	Quantity
}

type Constraint struct {
	Kind  string   `toml:"kind"`
	Cells []string `toml:"cells"`
}

type Fact struct {
	Cell string `toml:"cell"`
	Quantity
}

type Phase struct {
	Name    string   `toml:"name"`
	Facts   []Fact   `toml:"facts"`
	Retract []string `toml:"retract"`
	Assume  []string `toml:"assume"`
	Report  []string `toml:"report"`
}

// Load reads and validates the description in the named file.
func Load(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if err := f.check(md); err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}
	return &f, nil
}

// Parse reads and validates a description.
func Parse(data string) (*File, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, errors.Wrap(err, "parsing network description")
	}
	if err := f.check(md); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) check(md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		var keys []string
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return errors.Wrapf(ErrInvalid, "unknown keys: %s", strings.Join(keys, ", "))
	}

	switch f.Layer {
	case "":
		f.Layer = LayerInterval
	case LayerScalar, LayerInterval, LayerDatum, LayerTMS:
	default:
		return errors.Wrapf(ErrInvalid, "unknown layer %q", f.Layer)
	}

	names := make(map[string]struct{})
	for _, c := range f.Cells {
		if c.Name == "" {
			return errors.Wrap(ErrInvalid, "cell without a name")
		}
		if _, ok := names[c.Name]; ok {
			return errors.Wrapf(ErrInvalid, "cell %q declared twice", c.Name)
		}
		names[c.Name] = struct{}{}
	}
	known := func(name string) error {
		if _, ok := names[name]; !ok {
			return errors.Wrapf(ErrInvalid, "undeclared cell %q", name)
		}
		return nil
	}

	for _, c := range f.Constraints {
		b, ok := builders[c.Kind]
		if !ok {
			return errors.Wrapf(ErrInvalid, "unknown constraint kind %q (want one of %s)", c.Kind, strings.Join(Kinds(), ", "))
		}
		if len(c.Cells) != b.arity {
			return errors.Wrapf(ErrInvalid, "constraint %s takes %d cells, got %d", c.Kind, b.arity, len(c.Cells))
		}
		for _, name := range c.Cells {
			if err := known(name); err != nil {
				return err
			}
		}
	}

	for _, p := range f.Phases {
		for _, fact := range p.Facts {
			if err := known(fact.Cell); err != nil {
				return err
			}
			if fact.IsZero() {
				return errors.Wrapf(ErrInvalid, "phase %q: fact for %s has no value", p.Name, fact.Cell)
			}
		}
		for _, name := range p.Report {
			if err := known(name); err != nil {
				return err
			}
		}
	}
	return nil
}

type builder struct {
	arity int
	build func(net *propnet.Network, cells []*propnet.Cell) error
}

type (
	constraint3 func(net *propnet.Network, x, y, z *propnet.Cell) error
	constraint2 func(net *propnet.Network, x, y *propnet.Cell) error
	prop3       func(net *propnet.Network, a, b, out *propnet.Cell) (*propnet.Propagator, error)
	prop2       func(net *propnet.Network, a, out *propnet.Cell) (*propnet.Propagator, error)
)

func (f constraint3) builder() builder {
	return builder{3, func(net *propnet.Network, c []*propnet.Cell) error { return f(net, c[0], c[1], c[2]) }}
}

func (f constraint2) builder() builder {
	return builder{2, func(net *propnet.Network, c []*propnet.Cell) error { return f(net, c[0], c[1]) }}
}

func (f prop3) builder() builder {
	return builder{3, func(net *propnet.Network, c []*propnet.Cell) error {
		_, err := f(net, c[0], c[1], c[2])
		return err
	}}
}

func (f prop2) builder() builder {
	return builder{2, func(net *propnet.Network, c []*propnet.Cell) error {
		_, err := f(net, c[0], c[1])
		return err
	}}
}

// Cells are listed inputs first, output last.
var builders = map[string]builder{
	"sum":        constraint3(propnet.Sum).builder(),
	"product":    constraint3(propnet.Product).builder(),
	"quadratic":  constraint2(propnet.Quadratic).builder(),
	"adder":      prop3(propnet.Adder).builder(),
	"subtractor": prop3(propnet.Subtractor).builder(),
	"multiplier": prop3(propnet.Multiplier).builder(),
	"divider":    prop3(propnet.Divider).builder(),
	"squarer":    prop2(propnet.Squarer).builder(),
	"sqrter":     prop2(propnet.Sqrter).builder(),
}

// Kinds lists the constraint kinds a description may use.
func Kinds() []string {
	var kinds []string
	for k := range builders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Build constructs the described network, with its initial cell
// content and constraints. No phase is applied.
func (f *File) Build(opts ...propnet.Option) (*propnet.Network, error) {
	net := propnet.NewNetwork(opts...)
	for _, c := range f.Cells {
		var content propnet.Value
		if !c.IsZero() {
			v, err := f.value(net, c.Quantity)
			if err != nil {
				return nil, errors.Wrapf(err, "cell %s", c.Name)
			}
			content = v
		}
		if _, err := net.AddCell(c.Name, content); err != nil {
			return nil, err
		}
	}
	for _, c := range f.Constraints {
		cells := make([]*propnet.Cell, 0, len(c.Cells))
		for _, name := range c.Cells {
			cell, err := net.Cell(name)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
		}
		if err := builders[c.Kind].build(net, cells); err != nil {
			return nil, errors.Wrapf(err, "constraint %s %v", c.Kind, c.Cells)
		}
	}
	return net, nil
}

// value converts q to cell content for f's layer.
func (f *File) value(net *propnet.Network, q Quantity) (propnet.Value, error) {
	var base propnet.Value
	switch {
	case q.Lo != nil || q.Hi != nil:
		if q.Lo == nil || q.Hi == nil {
			return nil, errors.Wrap(ErrInvalid, "range needs both lo and hi")
		}
		if *q.Lo > *q.Hi {
			return nil, errors.Wrapf(ErrInvalid, "empty range [%g, %g]", *q.Lo, *q.Hi)
		}
		if f.Layer == LayerScalar {
			return nil, errors.Wrap(ErrInvalid, "scalar layer takes exact values only")
		}
		base = propnet.Interval{Lo: *q.Lo, Hi: *q.Hi}
	case f.Layer == LayerScalar:
		base = propnet.Scalar(*q.Value)
	default:
		base = propnet.PointInterval(*q.Value)
	}

	switch f.Layer {
	case LayerDatum:
		return propnet.NewDatum(base, q.Support...), nil
	case LayerTMS:
		return net.TMS(propnet.NewDatum(base, q.Support...)), nil
	}
	if len(q.Support) > 0 {
		return nil, errors.Wrapf(ErrInvalid, "layer %s does not track support", f.Layer)
	}
	return base, nil
}

// Result is the reported content of one cell.
type Result struct {
	Cell    string
	Content propnet.Value
}

// Value is the believed content: for a TMS cell, its strongest
// consequence; otherwise the content itself. It is nil if nothing is
// known or believed.
func (r Result) Value() propnet.Value {
	if t, ok := r.Content.(*propnet.TMS); ok {
		d, ok := t.StrongestConsequence()
		if !ok {
			return nil
		}
		return d
	}
	return r.Content
}

func (r Result) String() string {
	return r.Cell + ": " + propnet.VString(r.Value())
}

// Apply performs one phase on a network built from f: it revises
// beliefs, adds the phase's facts, runs the network, and reports the
// requested cells. When beliefs change, every propagator is alerted
// so that TMS cells are recomputed under the new worldview.
func (f *File) Apply(net *propnet.Network, p Phase) ([]Result, error) {
	if len(p.Retract) > 0 || len(p.Assume) > 0 {
		net.Beliefs().Retract(p.Retract...)
		net.Beliefs().Assume(p.Assume...)
		net.AlertAll()
	}
	for _, fact := range p.Facts {
		v, err := f.value(net, fact.Quantity)
		if err != nil {
			return nil, errors.Wrapf(err, "phase %q, cell %s", p.Name, fact.Cell)
		}
		cell, err := net.Cell(fact.Cell)
		if err != nil {
			return nil, err
		}
		if err := cell.AddContent(v, net); err != nil {
			return nil, errors.Wrapf(err, "phase %q", p.Name)
		}
	}
	if err := net.Run(); err != nil {
		return nil, errors.Wrapf(err, "phase %q", p.Name)
	}

	results := make([]Result, 0, len(p.Report))
	for _, name := range p.Report {
		cell, err := net.Cell(name)
		if err != nil {
			return nil, err
		}
		results = append(results, Result{Cell: name, Content: cell.Content()})
	}
	return results, nil
}
