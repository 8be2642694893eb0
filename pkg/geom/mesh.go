package geom

import "fmt"

// Mesh is a quad-face mesh with per-face attribute side tables.
// Attribute slices always hold exactly one value per face; Append keeps
// that invariant by zero-filling attributes the other mesh lacks.
type Mesh struct {
	Verts []Vec3  `json:"verts"`
	Faces [][]int `json:"faces"` // vertex indices, one slice per face

	IntAttrs   map[string][]int     `json:"int_attrs,omitempty"`
	FloatAttrs map[string][]float64 `json:"float_attrs,omitempty"`
}

// Box returns an axis-aligned rectangular box with its minimum corner
// at the origin: X ∈ [0, l], Y ∈ [0, w], Z ∈ [0, t]. Six quad faces,
// outward winding.
func Box(l, w, t float64) *Mesh {
	return &Mesh{
		Verts: []Vec3{
			{0, 0, 0}, {l, 0, 0}, {l, w, 0}, {0, w, 0},
			{0, 0, t}, {l, 0, t}, {l, w, t}, {0, w, t},
		},
		Faces: [][]int{
			{0, 3, 2, 1}, // bottom
			{4, 5, 6, 7}, // top
			{0, 1, 5, 4}, // front
			{2, 3, 7, 6}, // back
			{0, 4, 7, 3}, // left
			{1, 2, 6, 5}, // right
		},
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Verts)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Verts) == 0
}

// SetFaceInt stores val under name on every face of the mesh,
// replacing any existing values for that attribute.
func (m *Mesh) SetFaceInt(name string, val int) {
	if m.IntAttrs == nil {
		m.IntAttrs = make(map[string][]int)
	}
	vals := make([]int, len(m.Faces))
	for i := range vals {
		vals[i] = val
	}
	m.IntAttrs[name] = vals
}

// SetFaceFloat stores val under name on every face of the mesh.
func (m *Mesh) SetFaceFloat(name string, val float64) {
	if m.FloatAttrs == nil {
		m.FloatAttrs = make(map[string][]float64)
	}
	vals := make([]float64, len(m.Faces))
	for i := range vals {
		vals[i] = val
	}
	m.FloatAttrs[name] = vals
}

// FaceInt returns the value of the named int attribute on face i.
func (m *Mesh) FaceInt(name string, i int) (int, bool) {
	vals, ok := m.IntAttrs[name]
	if !ok || i < 0 || i >= len(vals) {
		return 0, false
	}
	return vals[i], true
}

// FaceFloat returns the value of the named float attribute on face i.
func (m *Mesh) FaceFloat(name string, i int) (float64, bool) {
	vals, ok := m.FloatAttrs[name]
	if !ok || i < 0 || i >= len(vals) {
		return 0, false
	}
	return vals[i], true
}

// Translate moves every vertex by the offset. Attributes are untouched.
func (m *Mesh) Translate(offset Vec3) {
	for i := range m.Verts {
		m.Verts[i] = m.Verts[i].Add(offset)
	}
}

// Orient permutes vertex coordinates per the axis map. It returns an
// error for a non-permutation map; face topology and attributes are
// untouched.
func (m *Mesh) Orient(am AxisMap) error {
	if !am.Valid() {
		return fmt.Errorf("geom: axis map {%s %s %s} is not a permutation", am.X, am.Y, am.Z)
	}
	for i := range m.Verts {
		m.Verts[i] = am.Apply(m.Verts[i])
	}
	return nil
}

// Append joins other onto m in place, remapping vertex indices and
// carrying per-face attributes across. Attributes present on only one
// side are zero-filled on the other so every attribute slice stays one
// value per face. The other mesh is not modified.
func (m *Mesh) Append(other *Mesh) {
	if other == nil || other.IsEmpty() {
		return
	}
	base := len(m.Verts)
	oldFaces := len(m.Faces)
	m.Verts = append(m.Verts, other.Verts...)
	for _, f := range other.Faces {
		nf := make([]int, len(f))
		for i, vi := range f {
			nf[i] = vi + base
		}
		m.Faces = append(m.Faces, nf)
	}

	for name, vals := range other.IntAttrs {
		if m.IntAttrs == nil {
			m.IntAttrs = make(map[string][]int)
		}
		dst := m.IntAttrs[name]
		if len(dst) < oldFaces {
			dst = append(dst, make([]int, oldFaces-len(dst))...)
		}
		m.IntAttrs[name] = append(dst, vals...)
	}
	for name, vals := range m.IntAttrs {
		if len(vals) < len(m.Faces) {
			m.IntAttrs[name] = append(vals, make([]int, len(m.Faces)-len(vals))...)
		}
	}

	for name, vals := range other.FloatAttrs {
		if m.FloatAttrs == nil {
			m.FloatAttrs = make(map[string][]float64)
		}
		dst := m.FloatAttrs[name]
		if len(dst) < oldFaces {
			dst = append(dst, make([]float64, oldFaces-len(dst))...)
		}
		m.FloatAttrs[name] = append(dst, vals...)
	}
	for name, vals := range m.FloatAttrs {
		if len(vals) < len(m.Faces) {
			m.FloatAttrs[name] = append(vals, make([]float64, len(m.Faces)-len(vals))...)
		}
	}
}

// BoundingBox returns the axis-aligned bounding box of the mesh.
// For an empty mesh both corners are the zero vector.
func (m *Mesh) BoundingBox() (min, max Vec3) {
	if len(m.Verts) == 0 {
		return Vec3{}, Vec3{}
	}
	min, max = m.Verts[0], m.Verts[0]
	for _, v := range m.Verts[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.Z < min.Z {
			min.Z = v.Z
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
		if v.Z > max.Z {
			max.Z = v.Z
		}
	}
	return min, max
}
