/*

Package propnet is an implementation of propagator networks.

A Network holds named cells. Each Cell accumulates partial
information about some quantity, and that information only ever
becomes more specific: new content is merged into old, and a merge
that cannot be reconciled is a Contradiction. Propagators are pure
functions wired from input cells to an output cell. Whenever a cell
learns something new, the propagators reading it are alerted; Run
fires alerted propagators in FIFO order until nothing changes.

A caller may put any Value in a cell as long as its Merge is
commutative, associative, idempotent and monotonic. Built-in values
are Scalar (exact numbers), Interval (ranges that narrow by
intersection), Datum (a value plus the Support, or set of assumptions,
that justifies it) and TMS (a set of alternative datums interpreted
under the network's Beliefs, which can retract assumptions and record
inconsistent combinations of them).

The constraints Sum, Product and Quadratic install propagators in
every direction, so that e.g. knowing any two of x, y and x+y
determines the third.

Termination is the caller's responsibility. A network of monotonic
merges over values of finite height reaches a fixpoint; anything else
may run forever unless the network was built WithMaxSteps.

A demo can be found in cmd/propnet. It reads a TOML description of a
network (see internal/netfile) and reports the results. Sample TOML
files are in cmd/propnet/toml.

*/
package propnet
