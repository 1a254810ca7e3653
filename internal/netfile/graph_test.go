package netfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteGraph(t *testing.T) {
	f, err := Parse(`
layer = "scalar"

[[cells]]
name = "a"
value = 1.0

[[cells]]
name = "b"

[[cells]]
name = "a+b"

[[constraints]]
kind = "adder"
cells = ["a", "b", "a+b"]
`)
	require.NoError(t, err)
	net := build(t, f)

	cases := []struct {
		withContent bool
		want        string
	}{
		{false, `flowchart LR
  c0(["a"])
  c1(["b"])
  c2(["a+b"])
  p0{{"adder"}}
  c0 --> p0
  c1 --> p0
  p0 --> c2
`},
		{true, `flowchart LR
  c0(["a<br>1"])
  c1(["b"])
  c2(["a+b"])
  p0{{"adder"}}
  c0 --> p0
  c1 --> p0
  p0 --> c2
`},
	}
	for _, tc := range cases {
		var b strings.Builder
		require.NoError(t, WriteGraph(&b, net, tc.withContent))
		assert.Equal(t, tc.want, b.String())
	}
}

func TestWriteGraphConstraints(t *testing.T) {
	net := build(t, load(t, "temperature.toml"))

	var b strings.Builder
	require.NoError(t, WriteGraph(&b, net, false))
	got := b.String()

	// Two sums and two products, three propagators each.
	assert.Equal(t, 12, strings.Count(got, "{{"))
	assert.Equal(t, 9, strings.Count(got, "(["))
	assert.Contains(t, got, `p0{{"adder"}}`)
	assert.Contains(t, got, `p1{{"subtractor"}}`)
}
