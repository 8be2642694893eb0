package cutlist_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/DoubleBridges/millnodes/pkg/cabinet"
	"github.com/DoubleBridges/millnodes/pkg/cutlist"
)

func defaultRows(t *testing.T) []cutlist.Row {
	t.Helper()
	c, err := cabinet.BuildCarcass(cabinet.DefaultCarcassSpec())
	require.NoError(t, err)
	return cutlist.FromParts(c.Parts)
}

func TestFromPartsDefaultCarcass(t *testing.T) {
	rows := defaultRows(t)
	require.Len(t, rows, 4)

	// Sides share a spec, as do top/bottom and the two nailers; the
	// back is alone. Rows appear in first-occurrence order.
	assert.Equal(t, []string{"left_side", "right_side"}, rows[0].Parts)
	assert.Equal(t, 2, rows[0].Qty)
	assert.InDelta(t, 0.762, rows[0].Length, 1e-9)
	assert.InDelta(t, 0.6096, rows[0].Width, 1e-9)
	assert.Equal(t, "length", rows[0].Grain)

	assert.Equal(t, []string{"bottom", "top"}, rows[1].Parts)
	assert.Equal(t, 2, rows[1].Qty)
	assert.InDelta(t, 0.5715, rows[1].Length, 1e-9)
	assert.Equal(t, "width", rows[1].Grain)

	assert.Equal(t, []string{"bottom_nailer", "top_nailer"}, rows[2].Parts)
	assert.Equal(t, 2, rows[2].Qty)
	assert.InDelta(t, 0.1016, rows[2].Width, 1e-9)

	assert.Equal(t, []string{"back"}, rows[3].Parts)
	assert.Equal(t, 1, rows[3].Qty)
	assert.InDelta(t, 0.59055, rows[3].Length, 1e-9)
	assert.InDelta(t, 0.00635, rows[3].Thickness, 1e-9)
}

func TestFromPartsEmpty(t *testing.T) {
	assert.Empty(t, cutlist.FromParts(nil))
}

func TestFromPartsNoMerging(t *testing.T) {
	parts := []cabinet.PlacedPart{
		{Part: cabinet.PartLeftSide, Panel: cabinet.PanelSpec{Length: 1, Width: 0.5, Thickness: 0.019}},
		{Part: cabinet.PartRightSide, Panel: cabinet.PanelSpec{Length: 1, Width: 0.5, Thickness: 0.025}},
	}
	rows := cutlist.FromParts(parts)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Qty)
	assert.Equal(t, 1, rows[1].Qty)
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	rows := defaultRows(t)

	var buf bytes.Buffer
	require.NoError(t, cutlist.WriteYAML(&buf, rows))

	var back []cutlist.Row
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, rows, back)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	rows := defaultRows(t)

	var buf bytes.Buffer
	require.NoError(t, cutlist.WriteJSON(&buf, rows))

	var back []cutlist.Row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, rows, back)
}
