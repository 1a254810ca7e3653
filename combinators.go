package propnet

// Single-direction arithmetic propagators. Each takes its input cells
// followed by its output cell.

func Adder(net *Network, a, b, out *Cell) (*Propagator, error) {
	return NewPropagator(net, "adder", binary(Add), []*Cell{a, b}, out)
}

func Subtractor(net *Network, a, b, out *Cell) (*Propagator, error) {
	return NewPropagator(net, "subtractor", binary(Sub), []*Cell{a, b}, out)
}

func Multiplier(net *Network, a, b, out *Cell) (*Propagator, error) {
	return NewPropagator(net, "multiplier", binary(Mul), []*Cell{a, b}, out)
}

func Divider(net *Network, a, b, out *Cell) (*Propagator, error) {
	return NewPropagator(net, "divider", binary(Div), []*Cell{a, b}, out)
}

func Squarer(net *Network, a, out *Cell) (*Propagator, error) {
	return NewPropagator(net, "squarer", unary(Square), []*Cell{a}, out)
}

func Sqrter(net *Network, a, out *Cell) (*Propagator, error) {
	return NewPropagator(net, "sqrter", unary(Sqrt), []*Cell{a}, out)
}

func binary(f func(a, b Value) (Value, error)) Func {
	return func(args ...Value) (Value, error) {
		if len(args) != 2 {
			return nil, ErrArity
		}
		return f(args[0], args[1])
	}
}

func unary(f func(a Value) (Value, error)) Func {
	return func(args ...Value) (Value, error) {
		if len(args) != 1 {
			return nil, ErrArity
		}
		return f(args[0])
	}
}

// Constraints. Each installs several propagators so that information
// flows in every direction: knowing enough of the cells determines the
// rest, and refining any of them refines the others.

// Sum constrains x + y = total.
func Sum(net *Network, x, y, total *Cell) error {
	return build(
		func() (*Propagator, error) { return Adder(net, x, y, total) },
		func() (*Propagator, error) { return Subtractor(net, total, x, y) },
		func() (*Propagator, error) { return Subtractor(net, total, y, x) },
	)
}

// Product constrains x * y = total.
func Product(net *Network, x, y, total *Cell) error {
	return build(
		func() (*Propagator, error) { return Multiplier(net, x, y, total) },
		func() (*Propagator, error) { return Divider(net, total, x, y) },
		func() (*Propagator, error) { return Divider(net, total, y, x) },
	)
}

// Quadratic constrains x * x = x2.
func Quadratic(net *Network, x, x2 *Cell) error {
	return build(
		func() (*Propagator, error) { return Squarer(net, x, x2) },
		func() (*Propagator, error) { return Sqrter(net, x2, x) },
	)
}

func build(fns ...func() (*Propagator, error)) error {
	for _, fn := range fns {
		if _, err := fn(); err != nil {
			return err
		}
	}
	return nil
}
