package cabinet_test

import (
	"math"
	"testing"

	"github.com/DoubleBridges/millnodes/pkg/cabinet"
	"github.com/DoubleBridges/millnodes/pkg/geom"
)

const tol = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

func TestBuildPanelDefaults(t *testing.T) {
	mesh, err := cabinet.BuildPanel(cabinet.DefaultPanelSpec())
	if err != nil {
		t.Fatalf("BuildPanel: %v", err)
	}

	if mesh.VertexCount() != 8 || mesh.FaceCount() != 6 {
		t.Errorf("mesh has %d verts, %d faces", mesh.VertexCount(), mesh.FaceCount())
	}

	min, max := mesh.BoundingBox()
	if min != (geom.Vec3{}) {
		t.Errorf("min corner = %v, want origin", min)
	}
	if !near(max.X, 0.6096) || !near(max.Y, 0.3048) || !near(max.Z, 0.01905) {
		t.Errorf("max corner = %v", max)
	}

	for i := 0; i < mesh.FaceCount(); i++ {
		if g, ok := mesh.FaceInt(cabinet.AttrGrainDirection, i); !ok || g != int(cabinet.GrainLength) {
			t.Errorf("face %d grain_direction = %d,%v", i, g, ok)
		}
		if l, ok := mesh.FaceFloat(cabinet.AttrPanelLength, i); !ok || !near(l, 0.6096) {
			t.Errorf("face %d panel_length = %g,%v", i, l, ok)
		}
	}
}

func TestBuildPanelGrainWidth(t *testing.T) {
	spec := cabinet.PanelSpec{Length: 0.5, Width: 0.25, Thickness: 0.019, Grain: cabinet.GrainWidth}
	mesh, err := cabinet.BuildPanel(spec)
	if err != nil {
		t.Fatalf("BuildPanel: %v", err)
	}
	if g, _ := mesh.FaceInt(cabinet.AttrGrainDirection, 0); g != int(cabinet.GrainWidth) {
		t.Errorf("grain_direction = %d, want %d", g, int(cabinet.GrainWidth))
	}
}

func TestBuildPanelRejects(t *testing.T) {
	tests := []struct {
		name      string
		spec      cabinet.PanelSpec
		wantParam string
	}{
		{"ZeroLength", cabinet.PanelSpec{Length: 0, Width: 0.3, Thickness: 0.019}, "length"},
		{"NegativeWidth", cabinet.PanelSpec{Length: 0.6, Width: -0.1, Thickness: 0.019}, "width"},
		{"SubMinThickness", cabinet.PanelSpec{Length: 0.6, Width: 0.3, Thickness: 0.0005}, "thickness"},
		{"BadGrain", cabinet.PanelSpec{Length: 0.6, Width: 0.3, Thickness: 0.019, Grain: cabinet.Grain(7)}, "grain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cabinet.BuildPanel(tt.spec)
			if err == nil {
				t.Fatal("expected error")
			}
			pe, ok := err.(*cabinet.ParamError)
			if !ok {
				t.Fatalf("error type %T, want *ParamError", err)
			}
			if pe.Param != tt.wantParam {
				t.Errorf("Param = %q, want %q", pe.Param, tt.wantParam)
			}
		})
	}
}

func TestBuildPanelAtMinimum(t *testing.T) {
	spec := cabinet.PanelSpec{Length: cabinet.MinDim, Width: cabinet.MinDim, Thickness: cabinet.MinDim}
	if _, err := cabinet.BuildPanel(spec); err != nil {
		t.Errorf("dimensions exactly at the minimum rejected: %v", err)
	}
}
