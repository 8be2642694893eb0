package kernel

import "testing"

func TestMeshCounts(t *testing.T) {
	tests := []struct {
		name      string
		mesh      Mesh
		wantVerts int
		wantTris  int
	}{
		{"empty", Mesh{}, 0, 0},
		{
			"one triangle",
			Mesh{
				Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
				Indices:  []uint32{0, 1, 2},
			},
			3, 1,
		},
		{
			"quad as two triangles",
			Mesh{
				Vertices: []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0},
				Indices:  []uint32{0, 1, 2, 2, 3, 0},
			},
			4, 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mesh.VertexCount(); got != tt.wantVerts {
				t.Errorf("VertexCount() = %d, want %d", got, tt.wantVerts)
			}
			if got := tt.mesh.TriangleCount(); got != tt.wantTris {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.wantTris)
			}
		})
	}
}

func TestMeshIsEmpty(t *testing.T) {
	if !(&Mesh{}).IsEmpty() {
		t.Error("IsEmpty() = false for empty mesh, want true")
	}
	m := &Mesh{Vertices: []float32{1, 2, 3}}
	if m.IsEmpty() {
		t.Error("IsEmpty() = true for non-empty mesh, want false")
	}
}
