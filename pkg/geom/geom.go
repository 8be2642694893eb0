// Package geom provides the mesh-with-attributes representation used by
// the millwork builders. Meshes are axis-aligned quad-face boxes with
// per-face attribute side tables; attributes survive orientation,
// translation, and joining, which is how part identity and grain
// direction reach downstream consumers.
package geom

import "fmt"

// Vec3 is a 3D point or offset in meters.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Component returns the coordinate along the given axis.
func (v Vec3) Component(a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	return 0
}

// Axis identifies one of the three coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// AxisMap describes where each local axis of a mesh lands in the
// destination frame: the local X coordinate of every vertex becomes the
// destination coordinate named by X, and so on. The three axes must
// form a permutation. Because coordinates are only permuted, never
// negated, a mesh in the positive octant stays there and a min corner
// at the origin stays at the origin.
type AxisMap struct {
	X, Y, Z Axis
}

// Identity is the axis map that leaves a mesh unchanged.
var Identity = AxisMap{X: AxisX, Y: AxisY, Z: AxisZ}

// Valid reports whether the map is a permutation of the three axes.
func (m AxisMap) Valid() bool {
	seen := [3]bool{}
	for _, a := range [3]Axis{m.X, m.Y, m.Z} {
		if a < AxisX || a > AxisZ || seen[a] {
			return false
		}
		seen[a] = true
	}
	return true
}

// Apply moves a single vertex into the destination frame.
func (m AxisMap) Apply(v Vec3) Vec3 {
	var out Vec3
	out.X = v.Component(invert(m, AxisX))
	out.Y = v.Component(invert(m, AxisY))
	out.Z = v.Component(invert(m, AxisZ))
	return out
}

// invert finds which source axis lands on the destination axis dst.
func invert(m AxisMap, dst Axis) Axis {
	switch dst {
	case m.X:
		return AxisX
	case m.Y:
		return AxisY
	default:
		return AxisZ
	}
}
