package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/DoubleBridges/millnodes/pkg/cabinet"
)

// loadCarcassSpec reads a YAML carcass spec. Fields the file omits
// keep their defaults, matching how the flag surface behaves.
func loadCarcassSpec(path string) (cabinet.CarcassSpec, error) {
	spec := cabinet.DefaultCarcassSpec()
	data, err := os.ReadFile(path)
	if err != nil {
		return spec, fmt.Errorf("spec file: %w", err)
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("spec file %s: %w", path, err)
	}
	return spec, nil
}

// overlayCarcassFlags copies explicitly-set flag values over a spec
// loaded from file, so flags always win.
func overlayCarcassFlags(cmd *cobra.Command, dst *cabinet.CarcassSpec, flags cabinet.CarcassSpec) {
	for name, apply := range map[string]func(){
		"width":              func() { dst.Width = flags.Width },
		"height":             func() { dst.Height = flags.Height },
		"depth":              func() { dst.Depth = flags.Depth },
		"material-thickness": func() { dst.MaterialThickness = flags.MaterialThickness },
		"back-thickness":     func() { dst.BackThickness = flags.BackThickness },
		"back-inset":         func() { dst.BackInset = flags.BackInset },
		"nailer-width":       func() { dst.NailerWidth = flags.NailerWidth },
		"include-top":        func() { dst.IncludeTop = flags.IncludeTop },
		"include-bottom":     func() { dst.IncludeBottom = flags.IncludeBottom },
		"include-back":       func() { dst.IncludeBack = flags.IncludeBack },
	} {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
}
