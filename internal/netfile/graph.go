package netfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/bobg/propnet"
)

// WriteGraph writes the topology of net as a Mermaid flowchart.
// Cells are rounded nodes labeled with their name and, if withContent
// is set, their current content. Propagators are hexagons. Edges run
// from each input cell to its propagator and from the propagator to
// its output.
func WriteGraph(w io.Writer, net *propnet.Network, withContent bool) error {
	var b strings.Builder
	b.WriteString("flowchart LR\n")
	for _, c := range net.Cells() {
		label := c.Name
		if withContent && c.Content() != nil {
			label += "\n" + propnet.VString(c.Content())
		}
		fmt.Fprintf(&b, "  c%d([\"%s\"])\n", c.ID, escape(label))
	}
	for _, p := range net.Propagators() {
		fmt.Fprintf(&b, "  p%d{{\"%s\"}}\n", p.ID, escape(p.Name))
	}
	for _, p := range net.Propagators() {
		for _, in := range p.Inputs {
			fmt.Fprintf(&b, "  c%d --> p%d\n", in, p.ID)
		}
		fmt.Fprintf(&b, "  p%d --> c%d\n", p.ID, p.Output)
	}
	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "writing graph")
}

var escaper = strings.NewReplacer(`"`, "#quot;", "\n", "<br>")

func escape(s string) string {
	return escaper.Replace(s)
}
