// Package tessellate turns placed millwork parts into triangle meshes
// using a geometry kernel. One mesh is produced per part, plus a
// single-solid union for watertight export.
package tessellate

import (
	"fmt"

	"github.com/DoubleBridges/millnodes/pkg/cabinet"
	"github.com/DoubleBridges/millnodes/pkg/kernel"
)

// partSolid builds the kernel solid for one placed part: a box sized
// to the part's oriented extents, translated into position. Parts are
// axis-aligned by construction, so orientation reduces to building the
// box with its carcass-frame dimensions directly.
func partSolid(p cabinet.PlacedPart, k kernel.Kernel) (kernel.Solid, error) {
	if !p.Orient.Valid() {
		return nil, fmt.Errorf("tessellate: part %s has invalid orientation", p.Part)
	}
	min, max := p.Bounds()
	s := k.Box(max.X-min.X, max.Y-min.Y, max.Z-min.Z)
	return k.Translate(s, min.X, min.Y, min.Z), nil
}

// Tessellate produces one triangle mesh per placed part, in part
// order, with PartName set so a viewer can color or select parts.
func Tessellate(parts []cabinet.PlacedPart, k kernel.Kernel) ([]*kernel.Mesh, error) {
	meshes := make([]*kernel.Mesh, 0, len(parts))
	for _, p := range parts {
		s, err := partSolid(p, k)
		if err != nil {
			return nil, err
		}
		mesh, err := k.ToMesh(s)
		if err != nil {
			return nil, fmt.Errorf("tessellate: ToMesh failed for part %s: %w", p.Part, err)
		}
		mesh.PartName = p.Part.String()
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// Solid unions all placed parts into a single kernel solid, in part
// order. The union is commutative, but a fixed order keeps repeated
// exports identical.
func Solid(parts []cabinet.PlacedPart, k kernel.Kernel) (kernel.Solid, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("tessellate: no parts to union")
	}
	acc, err := partSolid(parts[0], k)
	if err != nil {
		return nil, err
	}
	for _, p := range parts[1:] {
		s, err := partSolid(p, k)
		if err != nil {
			return nil, err
		}
		acc = k.Union(acc, s)
	}
	return acc, nil
}
