package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/DoubleBridges/millnodes/pkg/cabinet"
	"github.com/DoubleBridges/millnodes/pkg/export"
	"github.com/DoubleBridges/millnodes/pkg/kernel"
	"github.com/DoubleBridges/millnodes/pkg/kernel/sdfx"
)

func newPanelCmd() *cobra.Command {
	var (
		grainName string
		stlPath   string
		meshPath  string
	)

	spec := cabinet.DefaultPanelSpec()

	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Build a single panel",
		Long: `Builds one rectangular sheet-good panel with its minimum corner at
the origin: length along X, width along Y, thickness along Z. Grain
direction and panel length are stored on every face.`,
		Example: `  millnodes panel --length 0.6096 --width 0.3048 --thickness 0.01905 \
    --grain length --stl panel.stl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch grainName {
			case "length":
				spec.Grain = cabinet.GrainLength
			case "width":
				spec.Grain = cabinet.GrainWidth
			default:
				return fmt.Errorf("unknown grain %q, expected length or width", grainName)
			}

			m, err := cabinet.BuildPanel(spec)
			if err != nil {
				return err
			}
			slog.Info("panel built",
				"length", spec.Length,
				"width", spec.Width,
				"thickness", spec.Thickness,
				"grain", spec.Grain,
			)

			if meshPath != "" {
				if err := writeJSON(meshPath, m); err != nil {
					return err
				}
			}
			if stlPath != "" {
				k := sdfx.New()
				mesh, err := k.ToMesh(k.Box(spec.Length, spec.Width, spec.Thickness))
				if err != nil {
					return err
				}
				if err := export.SaveSTL(stlPath, []*kernel.Mesh{mesh}); err != nil {
					return err
				}
				slog.Info("stl written", "path", stlPath)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&spec.Length, "length", spec.Length, "panel length (m)")
	f.Float64Var(&spec.Width, "width", spec.Width, "panel width (m)")
	f.Float64Var(&spec.Thickness, "thickness", spec.Thickness, "panel thickness (m)")
	f.StringVar(&grainName, "grain", "length", "grain direction: length or width")
	f.StringVar(&stlPath, "stl", "", "write panel geometry as binary STL")
	f.StringVar(&meshPath, "mesh-json", "", "write the attribute mesh as JSON")

	return cmd
}
