// Package cutlist renders placed parts as a manufacturing cut list.
// Parts sharing dimensions and grain collapse into one row with a
// quantity, the way a shop list is written.
package cutlist

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/DoubleBridges/millnodes/pkg/cabinet"
)

// Row is one line of the cut list. Dimensions are meters in the
// panel's own frame (length x width x thickness), independent of how
// the part sits in the carcass.
type Row struct {
	Parts     []string `yaml:"parts" json:"parts"`
	Qty       int      `yaml:"qty" json:"qty"`
	Length    float64  `yaml:"length" json:"length"`
	Width     float64  `yaml:"width" json:"width"`
	Thickness float64  `yaml:"thickness" json:"thickness"`
	Grain     string   `yaml:"grain" json:"grain"`
}

// FromParts aggregates placed parts into rows. Rows appear in first-
// occurrence order of their panel spec, so the same build always
// yields the same list.
func FromParts(parts []cabinet.PlacedPart) []Row {
	var rows []Row
	index := make(map[cabinet.PanelSpec]int)
	for _, p := range parts {
		if i, ok := index[p.Panel]; ok {
			rows[i].Qty++
			rows[i].Parts = append(rows[i].Parts, p.Part.String())
			continue
		}
		index[p.Panel] = len(rows)
		rows = append(rows, Row{
			Parts:     []string{p.Part.String()},
			Qty:       1,
			Length:    p.Panel.Length,
			Width:     p.Panel.Width,
			Thickness: p.Panel.Thickness,
			Grain:     p.Panel.Grain.String(),
		})
	}
	return rows
}

// WriteYAML renders rows as YAML.
func WriteYAML(w io.Writer, rows []Row) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("cutlist: encode yaml: %w", err)
	}
	return enc.Close()
}

// WriteJSON renders rows as indented JSON.
func WriteJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("cutlist: encode json: %w", err)
	}
	return nil
}
