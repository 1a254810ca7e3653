package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobg/propnet"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PROPNET_ENV", filepath.Join(t.TempDir(), "none.env"))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func sample(name string) string {
	return filepath.Join("toml", name)
}

func TestRunTemperature(t *testing.T) {
	out, err := execute(t, "run", sample("temperature.toml"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "== room temperature", lines[0])
	assert.Equal(t, "f: 77", lines[1])
	assert.Equal(t, "c: 25", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "k: 298.1"), lines[3])
}

func TestRunWorldviews(t *testing.T) {
	out, err := execute(t, "run", sample("barometer-worldviews.toml"))
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "== "))
	assert.Contains(t, out, "because of {fall_time, shadows}")
	assert.Contains(t, out, "== doubt the stopwatch\nbuilding_height: [44.5135, 48.9778] because of {shadows}")
}

func TestRunStepLimit(t *testing.T) {
	_, err := execute(t, "run", "--max-steps", "3", sample("barometer-intervals.toml"))
	assert.ErrorIs(t, err, propnet.ErrStepLimit)
}

func TestRunMissingFile(t *testing.T) {
	_, err := execute(t, "run", sample("nonexistent.toml"))
	assert.Error(t, err)
}

func TestBadLogLevel(t *testing.T) {
	_, err := execute(t, "run", "--log-level", "loud", sample("temperature.toml"))
	assert.Error(t, err)
}

func TestGraph(t *testing.T) {
	out, err := execute(t, "graph", sample("barometer-intervals.toml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "flowchart LR\n"))
	assert.Contains(t, out, `(["building_height"])`)

	out, err = execute(t, "graph", "--content", sample("temperature.toml"))
	require.NoError(t, err)
	assert.Contains(t, out, `(["273.15<br>273.15"])`)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "propnet dev (unknown)\n"), out)
}
