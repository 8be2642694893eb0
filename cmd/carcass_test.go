package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/DoubleBridges/millnodes/pkg/cabinet"
	"github.com/DoubleBridges/millnodes/pkg/cutlist"
)

func TestCarcassCommandCutlist(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "cuts.yaml")

	cmd := newCarcassCmd()
	cmd.SetArgs([]string{"--cutlist", out})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var rows []cutlist.Row
	require.NoError(t, yaml.Unmarshal(data, &rows))
	require.Len(t, rows, 4)
	assert.Equal(t, 2, rows[0].Qty)
	assert.Equal(t, []string{"back"}, rows[3].Parts)
}

func TestCarcassCommandMeshJSON(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "carcass.json")

	cmd := newCarcassCmd()
	cmd.SetArgs([]string{"--mesh-json", out, "--include-back=false"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var c cabinet.Carcass
	require.NoError(t, json.Unmarshal(data, &c))
	assert.Len(t, c.Parts, 6)
	assert.InDelta(t, 0.59055, c.Interior.Depth, 1e-9)
}

func TestCarcassCommandSpecFileWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "spec.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte("width: 0.9\nheight: 0.9144\n"), 0o644))
	out := filepath.Join(dir, "carcass.json")

	cmd := newCarcassCmd()
	cmd.SetArgs([]string{"--spec", specPath, "--width", "0.45", "--mesh-json", out})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var c cabinet.Carcass
	require.NoError(t, json.Unmarshal(data, &c))
	// Flag width beats the file; the file's height sticks.
	assert.InDelta(t, 0.45-2*0.01905, c.Interior.Width, 1e-9)
	assert.InDelta(t, 0.9144-2*0.01905, c.Interior.Height, 1e-9)
}

func TestCarcassCommandInvalidSpec(t *testing.T) {
	cmd := newCarcassCmd()
	cmd.SetArgs([]string{"--width", "0"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	assert.Error(t, cmd.Execute())
}
