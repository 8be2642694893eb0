// Package kernel defines the abstract geometry kernel interface used
// to turn placed millwork parts into solid geometry for preview and
// export. Implementations (sdfx) provide solid modeling behind this
// interface so backends can be swapped without touching the builders.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface. Millwork parts are
// axis-aligned boxes placed by translation, so the surface is small:
// a min-corner-origin box primitive, union, and translate, plus
// triangle-mesh output.
type Kernel interface {
	// Box creates a box with extents [0,x] x [0,y] x [0,z].
	Box(x, y, z float64) Solid

	// Union returns the union of two solids.
	Union(a, b Solid) Solid

	// Translate moves a solid by (x, y, z).
	Translate(s Solid, x, y, z float64) Solid

	// ToMesh converts a solid to a triangle mesh.
	ToMesh(s Solid) (*Mesh, error)
}
