package cabinet

import "github.com/DoubleBridges/millnodes/pkg/geom"

// Part identifies one carcass component. The integer values are stored
// in the part_id face attribute and are fixed: manufacturing consumers
// match on them after the parts are joined into one mesh.
type Part int

const (
	PartLeftSide Part = iota + 1
	PartRightSide
	PartBottom
	PartTop
	PartBottomNailer
	PartTopNailer
	PartBack
)

func (p Part) String() string {
	switch p {
	case PartLeftSide:
		return "left_side"
	case PartRightSide:
		return "right_side"
	case PartBottom:
		return "bottom"
	case PartTop:
		return "top"
	case PartBottomNailer:
		return "bottom_nailer"
	case PartTopNailer:
		return "top_nailer"
	case PartBack:
		return "back"
	default:
		return "unknown"
	}
}

// Placements from the panel's canonical length-X/width-Y/thickness-Z
// frame into the carcass frame.
var (
	// orientFlat: bottom and top lie as built.
	orientFlat = geom.Identity
	// orientSide: stood upright with thickness along X, so length
	// (the cabinet height) runs up Z and width (the depth) along Y.
	orientSide = geom.AxisMap{X: geom.AxisZ, Y: geom.AxisY, Z: geom.AxisX}
	// orientBack: stood upright facing front, length along X, width up
	// Z, thickness along Y. Nailers share this orientation.
	orientBack = geom.AxisMap{X: geom.AxisX, Y: geom.AxisZ, Z: geom.AxisY}
)

// PlacedPart is one derived panel with its placement in the carcass
// frame. It is the exact intermediate consumed by mesh assembly,
// tessellation, and cutlist generation.
type PlacedPart struct {
	Part     Part         `json:"part"`
	Panel    PanelSpec    `json:"panel"`
	Orient   geom.AxisMap `json:"-"`
	Position geom.Vec3    `json:"position"`
}

// Bounds returns the part's axis-aligned extent in the carcass frame.
func (p PlacedPart) Bounds() (min, max geom.Vec3) {
	size := geom.Vec3{X: p.Panel.Length, Y: p.Panel.Width, Z: p.Panel.Thickness}
	return p.Position, p.Position.Add(p.Orient.Apply(size))
}

// InteriorBox is the usable cavity left inside the carcass after
// accounting for material thickness, the back panel, and nailer depth.
// Child components (drawers, shelves) position against it without
// re-deriving carcass joinery.
type InteriorBox struct {
	Origin geom.Vec3 `json:"origin"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Depth  float64   `json:"depth"`
}

// Carcass is the result of a carcass build: the joined mesh, the
// ordered part placements behind it, and the interior cavity.
type Carcass struct {
	Mesh     *geom.Mesh   `json:"mesh"`
	Parts    []PlacedPart `json:"parts"`
	Interior InteriorBox  `json:"interior"`
}

// BuildCarcass derives the carcass part placements from spec, builds a
// panel for each, tags each part's faces with its part_id, and joins
// everything in a fixed order (sides, bottom, top, nailers, back) so
// repeated builds from one spec are identical.
//
// Any constraint violation, on a supplied parameter or on a derived
// quantity, aborts the whole build; no partial assembly is returned.
func BuildCarcass(spec CarcassSpec) (*Carcass, error) {
	parts, interior, err := deriveParts(spec)
	if err != nil {
		return nil, err
	}

	assembly := &geom.Mesh{}
	for _, p := range parts {
		m, err := BuildPanel(p.Panel)
		if err != nil {
			// Derivation produced a degenerate panel; attribute it to
			// the part rather than the panel's local parameter name.
			if pe, ok := err.(*ParamError); ok {
				return nil, &ParamError{
					Param:      p.Part.String() + "." + pe.Param,
					Value:      pe.Value,
					Constraint: pe.Constraint,
				}
			}
			return nil, err
		}
		if err := m.Orient(p.Orient); err != nil {
			return nil, err
		}
		m.Translate(p.Position)
		m.SetFaceInt(AttrPartID, int(p.Part))
		assembly.Append(m)
	}

	return &Carcass{Mesh: assembly, Parts: parts, Interior: interior}, nil
}

// deriveParts runs the dimension derivation and placement rules.
//
// With every panel included the derivation is:
//
//	interior_width  = width  - 2*material_thickness
//	interior_height = height - 2*material_thickness
//	back_length     = interior_width + 2*back_inset
//	interior_origin = (material_thickness,
//	                   back_thickness + material_thickness,
//	                   material_thickness)
//	interior_depth  = depth - (back_thickness + material_thickness)
//
// When the top, bottom, or back is excluded, its thickness no longer
// shrinks the interior: the interior height only subtracts the
// thickness of panels actually present, the back and nailers drop to
// the floor when there is no bottom, and the interior starts directly
// in front of the nailers when there is no back.
func deriveParts(spec CarcassSpec) ([]PlacedPart, InteriorBox, error) {
	if err := spec.Validate(); err != nil {
		return nil, InteriorBox{}, err
	}

	mt := spec.MaterialThickness
	bottomInset := 0.0
	if spec.IncludeBottom {
		bottomInset = mt
	}
	topInset := 0.0
	if spec.IncludeTop {
		topInset = mt
	}

	interiorWidth := spec.Width - 2*mt
	if interiorWidth < MinDim {
		return nil, InteriorBox{}, &ParamError{
			Param: "interior_width", Value: interiorWidth,
			Constraint: atLeastMinDim + " (material_thickness too large for width)",
		}
	}
	interiorHeight := spec.Height - bottomInset - topInset
	if interiorHeight < MinDim {
		return nil, InteriorBox{}, &ParamError{
			Param: "interior_height", Value: interiorHeight,
			Constraint: atLeastMinDim + " (material_thickness too large for height)",
		}
	}
	if spec.NailerWidth > interiorHeight {
		return nil, InteriorBox{}, &ParamError{
			Param: "nailer_width", Value: spec.NailerWidth,
			Constraint: "no larger than the interior height",
		}
	}

	// Nailers are material_thickness deep; the back sits directly in
	// front of them, dadoed into the sides by back_inset.
	originY := mt
	if spec.IncludeBack {
		originY += spec.BackThickness
	}
	interiorDepth := spec.Depth - originY
	if interiorDepth < MinDim {
		return nil, InteriorBox{}, &ParamError{
			Param: "interior_depth", Value: interiorDepth,
			Constraint: atLeastMinDim + " (back and nailers too deep for depth)",
		}
	}
	backLength := interiorWidth + 2*spec.BackInset

	parts := []PlacedPart{
		{
			Part:     PartLeftSide,
			Panel:    PanelSpec{Length: spec.Height, Width: spec.Depth, Thickness: mt, Grain: GrainLength},
			Orient:   orientSide,
			Position: geom.Vec3{},
		},
		{
			Part:     PartRightSide,
			Panel:    PanelSpec{Length: spec.Height, Width: spec.Depth, Thickness: mt, Grain: GrainLength},
			Orient:   orientSide,
			Position: geom.Vec3{X: spec.Width - mt},
		},
	}

	if spec.IncludeBottom {
		parts = append(parts, PlacedPart{
			Part:     PartBottom,
			Panel:    PanelSpec{Length: interiorWidth, Width: spec.Depth, Thickness: mt, Grain: GrainWidth},
			Orient:   orientFlat,
			Position: geom.Vec3{X: mt},
		})
	}
	if spec.IncludeTop {
		parts = append(parts, PlacedPart{
			Part:     PartTop,
			Panel:    PanelSpec{Length: interiorWidth, Width: spec.Depth, Thickness: mt, Grain: GrainWidth},
			Orient:   orientFlat,
			Position: geom.Vec3{X: mt, Z: spec.Height - mt},
		})
	}

	parts = append(parts,
		PlacedPart{
			Part:     PartBottomNailer,
			Panel:    PanelSpec{Length: interiorWidth, Width: spec.NailerWidth, Thickness: mt, Grain: GrainLength},
			Orient:   orientBack,
			Position: geom.Vec3{X: mt, Z: bottomInset},
		},
		PlacedPart{
			Part:     PartTopNailer,
			Panel:    PanelSpec{Length: interiorWidth, Width: spec.NailerWidth, Thickness: mt, Grain: GrainLength},
			Orient:   orientBack,
			Position: geom.Vec3{X: mt, Z: spec.Height - topInset - spec.NailerWidth},
		},
	)

	if spec.IncludeBack {
		parts = append(parts, PlacedPart{
			Part:     PartBack,
			Panel:    PanelSpec{Length: backLength, Width: interiorHeight, Thickness: spec.BackThickness, Grain: GrainWidth},
			Orient:   orientBack,
			Position: geom.Vec3{X: mt - spec.BackInset, Y: mt, Z: bottomInset},
		})
	}

	interior := InteriorBox{
		Origin: geom.Vec3{X: mt, Y: originY, Z: bottomInset},
		Width:  interiorWidth,
		Height: interiorHeight,
		Depth:  interiorDepth,
	}
	return parts, interior, nil
}
