package tessellate_test

import (
	"math"
	"testing"

	"github.com/DoubleBridges/millnodes/pkg/cabinet"
	"github.com/DoubleBridges/millnodes/pkg/geom"
	"github.com/DoubleBridges/millnodes/pkg/kernel"
	"github.com/DoubleBridges/millnodes/pkg/kernel/sdfx"
	"github.com/DoubleBridges/millnodes/pkg/tessellate"
)

// newKernel returns a fresh sdfx kernel for testing.
func newKernel() kernel.Kernel {
	return sdfx.New()
}

func TestSinglePart(t *testing.T) {
	k := newKernel()
	parts := []cabinet.PlacedPart{
		{
			Part:   cabinet.PartBottom,
			Panel:  cabinet.PanelSpec{Length: 0.5715, Width: 0.6096, Thickness: 0.01905},
			Orient: geom.Identity,
		},
	}

	meshes, err := tessellate.Tessellate(parts, k)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(meshes))
	}

	m := meshes[0]
	if m.IsEmpty() {
		t.Fatal("mesh should not be empty")
	}
	if m.PartName != "bottom" {
		t.Errorf("expected PartName %q, got %q", "bottom", m.PartName)
	}
	if m.TriangleCount() == 0 {
		t.Error("mesh should have triangles")
	}
}

func TestPlacedPartCentroid(t *testing.T) {
	k := newKernel()
	p := cabinet.PlacedPart{
		Part:     cabinet.PartTop,
		Panel:    cabinet.PanelSpec{Length: 0.1, Width: 0.05, Thickness: 0.01},
		Orient:   geom.Identity,
		Position: geom.Vec3{X: 0.2, Y: 0.1, Z: 0.05},
	}

	meshes, err := tessellate.Tessellate([]cabinet.PlacedPart{p}, k)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	m := meshes[0]
	if m.IsEmpty() {
		t.Fatal("mesh should not be empty")
	}

	// The box spans (0.2,0.1,0.05)-(0.3,0.15,0.06); its vertex centroid
	// should sit near the middle. Generous tolerance since marching
	// cubes is approximate.
	var cx, cy, cz float64
	n := m.VertexCount()
	for i := 0; i < n; i++ {
		cx += float64(m.Vertices[i*3])
		cy += float64(m.Vertices[i*3+1])
		cz += float64(m.Vertices[i*3+2])
	}
	cx /= float64(n)
	cy /= float64(n)
	cz /= float64(n)

	const tol = 0.02
	if math.Abs(cx-0.25) > tol {
		t.Errorf("centroid X = %.4f, expected near 0.25", cx)
	}
	if math.Abs(cy-0.125) > tol {
		t.Errorf("centroid Y = %.4f, expected near 0.125", cy)
	}
	if math.Abs(cz-0.055) > tol {
		t.Errorf("centroid Z = %.4f, expected near 0.055", cz)
	}
}

func TestCarcassParts(t *testing.T) {
	k := newKernel()
	c, err := cabinet.BuildCarcass(cabinet.DefaultCarcassSpec())
	if err != nil {
		t.Fatalf("BuildCarcass failed: %v", err)
	}

	meshes, err := tessellate.Tessellate(c.Parts, k)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != len(c.Parts) {
		t.Fatalf("expected %d meshes, got %d", len(c.Parts), len(meshes))
	}

	names := map[string]bool{}
	for _, m := range meshes {
		if m.IsEmpty() {
			t.Errorf("mesh %q should not be empty", m.PartName)
		}
		names[m.PartName] = true
	}
	for _, want := range []string{"left_side", "right_side", "bottom", "top", "bottom_nailer", "top_nailer", "back"} {
		if !names[want] {
			t.Errorf("missing mesh for %q", want)
		}
	}
}

func TestEmptyParts(t *testing.T) {
	k := newKernel()
	meshes, err := tessellate.Tessellate(nil, k)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 0 {
		t.Fatalf("expected 0 meshes, got %d", len(meshes))
	}
}

func TestSolidUnion(t *testing.T) {
	k := newKernel()
	c, err := cabinet.BuildCarcass(cabinet.DefaultCarcassSpec())
	if err != nil {
		t.Fatalf("BuildCarcass failed: %v", err)
	}

	s, err := tessellate.Solid(c.Parts, k)
	if err != nil {
		t.Fatalf("Solid failed: %v", err)
	}

	// The union spans the whole cabinet, back overhang included.
	min, max := s.BoundingBox()
	const tol = 0.005
	if math.Abs(min[2]) > tol || math.Abs(max[2]-0.762) > tol {
		t.Errorf("union Z bounds = %f..%f, expected ~0..0.762", min[2], max[2])
	}
	if math.Abs(max[0]-0.6096) > tol {
		t.Errorf("union X max = %f, expected ~0.6096", max[0])
	}
}

func TestSolidNoParts(t *testing.T) {
	k := newKernel()
	if _, err := tessellate.Solid(nil, k); err == nil {
		t.Fatal("expected error for empty part list")
	}
}

func TestInvalidOrientation(t *testing.T) {
	k := newKernel()
	parts := []cabinet.PlacedPart{
		{
			Part:   cabinet.PartBack,
			Panel:  cabinet.PanelSpec{Length: 0.5, Width: 0.5, Thickness: 0.006},
			Orient: geom.AxisMap{X: geom.AxisX, Y: geom.AxisX, Z: geom.AxisX},
		},
	}
	if _, err := tessellate.Tessellate(parts, k); err == nil {
		t.Fatal("expected error for invalid orientation")
	}
}
