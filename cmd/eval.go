package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/DoubleBridges/millnodes/pkg/cabinet"
	"github.com/DoubleBridges/millnodes/pkg/cutlist"
	"github.com/DoubleBridges/millnodes/pkg/engine"
	"github.com/DoubleBridges/millnodes/pkg/export"
	"github.com/DoubleBridges/millnodes/pkg/kernel"
	"github.com/DoubleBridges/millnodes/pkg/kernel/sdfx"
	"github.com/DoubleBridges/millnodes/pkg/tessellate"
)

func newEvalCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "eval <script>",
		Short: "Evaluate a millwork script",
		Long: `Evaluates a Lisp script of (panel ...) and (carcass ...) forms and
reports the builds it produces. With --out-dir, each build is written
as <name>.stl plus <name>.cutlist.yaml for carcasses.`,
		Example: `  millnodes eval kitchen.lisp --out-dir build/`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			eng := engine.NewEngine(cabinet.NewRegistry())
			builds, evalErrs, err := eng.Evaluate(string(source))
			if err != nil {
				return err
			}
			if len(evalErrs) > 0 {
				for _, e := range evalErrs {
					slog.Error("eval", "script", args[0], "error", e.Error())
				}
				return fmt.Errorf("%s: %d error(s)", args[0], len(evalErrs))
			}

			for _, b := range builds {
				attrs := []any{"name", b.Name, "definition", b.Result.Definition}
				if b.Result.Interior != nil {
					attrs = append(attrs,
						"interior_width", b.Result.Interior.Width,
						"interior_height", b.Result.Interior.Height,
						"interior_depth", b.Result.Interior.Depth,
					)
				}
				slog.Info("build", attrs...)

				if outDir == "" {
					continue
				}
				if err := writeBuild(outDir, b); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "", "write STL and cut list files per build")
	return cmd
}

// writeBuild writes one build's STL (and cut list, for carcasses) into dir.
func writeBuild(dir string, b engine.Build) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	k := sdfx.New()
	if len(b.Result.Parts) > 0 {
		meshes, err := tessellate.Tessellate(b.Result.Parts, k)
		if err != nil {
			return err
		}
		if err := export.SaveSTL(filepath.Join(dir, b.Name+".stl"), meshes); err != nil {
			return err
		}
		f, err := os.Create(filepath.Join(dir, b.Name+".cutlist.yaml"))
		if err != nil {
			return err
		}
		defer f.Close()
		return cutlist.WriteYAML(f, cutlist.FromParts(b.Result.Parts))
	}

	// Panel build: one box straight through the kernel.
	min, max := b.Result.Mesh.BoundingBox()
	mesh, err := k.ToMesh(k.Box(max.X-min.X, max.Y-min.Y, max.Z-min.Z))
	if err != nil {
		return err
	}
	return export.SaveSTL(filepath.Join(dir, b.Name+".stl"), []*kernel.Mesh{mesh})
}
