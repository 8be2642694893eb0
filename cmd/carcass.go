package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/DoubleBridges/millnodes/pkg/cabinet"
	"github.com/DoubleBridges/millnodes/pkg/cutlist"
	"github.com/DoubleBridges/millnodes/pkg/export"
	"github.com/DoubleBridges/millnodes/pkg/kernel/sdfx"
	"github.com/DoubleBridges/millnodes/pkg/tessellate"
)

func newCarcassCmd() *cobra.Command {
	var (
		specPath    string
		stlPath     string
		cutlistPath string
		meshPath    string
		format      string
	)

	spec := cabinet.DefaultCarcassSpec()

	cmd := &cobra.Command{
		Use:   "carcass",
		Short: "Build a cabinet carcass",
		Long: `Builds a carcass box from exterior dimensions and joinery
parameters: two sides, bottom, top, two nailers, and a dadoed back.

Dimensions come from flags, or from a YAML spec file with --spec
(flags still override values the file sets). All distances are meters.`,
		Example: `  # Default 24" x 30" x 24" base cabinet, STL + cut list
  millnodes carcass --stl base.stl --cutlist base.yaml

  # From a spec file, no top panel
  millnodes carcass --spec base.yaml --include-top=false --cutlist -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if specPath != "" {
				loaded, err := loadCarcassSpec(specPath)
				if err != nil {
					return err
				}
				// Flags the caller set explicitly win over the file.
				overlayCarcassFlags(cmd, &loaded, spec)
				spec = loaded
			}

			c, err := cabinet.BuildCarcass(spec)
			if err != nil {
				return err
			}
			slog.Info("carcass built",
				"parts", len(c.Parts),
				"interior_width", c.Interior.Width,
				"interior_height", c.Interior.Height,
				"interior_depth", c.Interior.Depth,
			)

			if cutlistPath != "" {
				if err := writeCutlist(cutlistPath, format, cutlist.FromParts(c.Parts)); err != nil {
					return err
				}
			}
			if meshPath != "" {
				if err := writeJSON(meshPath, c); err != nil {
					return err
				}
			}
			if stlPath != "" {
				meshes, err := tessellate.Tessellate(c.Parts, sdfx.New())
				if err != nil {
					return err
				}
				if err := export.SaveSTL(stlPath, meshes); err != nil {
					return err
				}
				slog.Info("stl written", "path", stlPath)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&spec.Width, "width", spec.Width, "exterior width (m)")
	f.Float64Var(&spec.Height, "height", spec.Height, "exterior height (m)")
	f.Float64Var(&spec.Depth, "depth", spec.Depth, "exterior depth (m)")
	f.Float64Var(&spec.MaterialThickness, "material-thickness", spec.MaterialThickness, "side/top/bottom material thickness (m)")
	f.Float64Var(&spec.BackThickness, "back-thickness", spec.BackThickness, "back panel thickness (m)")
	f.Float64Var(&spec.BackInset, "back-inset", spec.BackInset, "dado depth into the sides (m)")
	f.Float64Var(&spec.NailerWidth, "nailer-width", spec.NailerWidth, "nailer strip width (m)")
	f.BoolVar(&spec.IncludeTop, "include-top", spec.IncludeTop, "generate the top panel")
	f.BoolVar(&spec.IncludeBottom, "include-bottom", spec.IncludeBottom, "generate the bottom panel")
	f.BoolVar(&spec.IncludeBack, "include-back", spec.IncludeBack, "generate the back panel")
	f.StringVar(&specPath, "spec", "", "YAML carcass spec file")
	f.StringVar(&stlPath, "stl", "", "write joined geometry as binary STL")
	f.StringVar(&cutlistPath, "cutlist", "", "write the cut list (- for stdout)")
	f.StringVar(&meshPath, "mesh-json", "", "write the attribute mesh and interior box as JSON")
	f.StringVar(&format, "format", "yaml", "cut list format: yaml or json")

	return cmd
}

// writeCutlist renders rows to path ("-" for stdout) in the requested format.
func writeCutlist(path, format string, rows []cutlist.Row) error {
	out := os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("cutlist: %w", err)
		}
		defer f.Close()
		out = f
	}
	switch format {
	case "yaml":
		return cutlist.WriteYAML(out, rows)
	case "json":
		return cutlist.WriteJSON(out, rows)
	}
	return fmt.Errorf("unknown cutlist format %q, expected yaml or json", format)
}

// writeJSON writes v to path as indented JSON.
func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
