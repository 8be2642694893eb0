// Package cabinet computes parametric millwork geometry. The panel
// builder is the leaf component: every other part is a panel with a
// derived size, orientation, and position. The carcass builder derives
// the seven parts of a cabinet box (sides, bottom, top, nailers, back)
// from a handful of exterior dimensions and joinery parameters, tags
// each part's faces with its identity, and joins them into one mesh.
//
// All builds are pure: the same spec always produces the same
// dimensions, positions, and attributes.
package cabinet

// MinDim is the smallest accepted distance parameter in meters.
const MinDim = 0.001

// Face attribute names. These are the durable contract with downstream
// export and manufacturing consumers; all three live on the face
// domain so they survive orientation, translation, and joining.
const (
	AttrPartID         = "part_id"
	AttrGrainDirection = "grain_direction"
	AttrPanelLength    = "panel_length"
)

// Grain is the orientation of wood grain relative to a panel's axes.
type Grain int

const (
	GrainLength Grain = iota // grain runs along the panel's length
	GrainWidth               // grain runs along the panel's width
)

func (g Grain) String() string {
	switch g {
	case GrainLength:
		return "length"
	case GrainWidth:
		return "width"
	default:
		return "unknown"
	}
}

// PanelSpec describes a single rectangular sheet-good part.
// Dimensions are meters, in the panel's canonical frame: length along
// X, width along Y, thickness along Z.
type PanelSpec struct {
	Length    float64 `yaml:"length" json:"length"`
	Width     float64 `yaml:"width" json:"width"`
	Thickness float64 `yaml:"thickness" json:"thickness"`
	Grain     Grain   `yaml:"grain" json:"grain"`
}

// Validate checks that every dimension meets the minimum bound.
func (s PanelSpec) Validate() error {
	if s.Length < MinDim {
		return &ParamError{Param: "length", Value: s.Length, Constraint: atLeastMinDim}
	}
	if s.Width < MinDim {
		return &ParamError{Param: "width", Value: s.Width, Constraint: atLeastMinDim}
	}
	if s.Thickness < MinDim {
		return &ParamError{Param: "thickness", Value: s.Thickness, Constraint: atLeastMinDim}
	}
	if s.Grain != GrainLength && s.Grain != GrainWidth {
		return &ParamError{Param: "grain", Value: float64(s.Grain), Constraint: "one of length, width"}
	}
	return nil
}

// CarcassSpec describes a cabinet carcass box. Width, Height, and
// Depth are exterior dimensions; the rest are joinery parameters.
type CarcassSpec struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
	Depth  float64 `yaml:"depth" json:"depth"`

	MaterialThickness float64 `yaml:"material_thickness" json:"material_thickness"`
	BackThickness     float64 `yaml:"back_thickness" json:"back_thickness"`
	BackInset         float64 `yaml:"back_inset" json:"back_inset"`
	NailerWidth       float64 `yaml:"nailer_width" json:"nailer_width"`

	IncludeTop    bool `yaml:"include_top" json:"include_top"`
	IncludeBottom bool `yaml:"include_bottom" json:"include_bottom"`
	IncludeBack   bool `yaml:"include_back" json:"include_back"`
}

// DefaultCarcassSpec returns a 24" x 30" x 24" base cabinet in 3/4"
// material with a 1/4" back in a 3/8" dado and 4" nailers, all panels
// included.
func DefaultCarcassSpec() CarcassSpec {
	return CarcassSpec{
		Width:             0.6096,
		Height:            0.762,
		Depth:             0.6096,
		MaterialThickness: 0.01905,
		BackThickness:     0.00635,
		BackInset:         0.009525,
		NailerWidth:       0.1016,
		IncludeTop:        true,
		IncludeBottom:     true,
		IncludeBack:       true,
	}
}

// DefaultPanelSpec returns a 24" x 12" x 3/4" panel with grain along
// the length.
func DefaultPanelSpec() PanelSpec {
	return PanelSpec{
		Length:    0.6096,
		Width:     0.3048,
		Thickness: 0.01905,
		Grain:     GrainLength,
	}
}

// Validate checks the top-level parameters. Derived-quantity
// constraints (interior width and height going non-positive, nailer
// fit) are checked by BuildCarcass once the derivation runs.
func (s CarcassSpec) Validate() error {
	for _, p := range []struct {
		name string
		val  float64
	}{
		{"width", s.Width},
		{"height", s.Height},
		{"depth", s.Depth},
		{"material_thickness", s.MaterialThickness},
		{"back_thickness", s.BackThickness},
		{"nailer_width", s.NailerWidth},
	} {
		if p.val < MinDim {
			return &ParamError{Param: p.name, Value: p.val, Constraint: atLeastMinDim}
		}
	}
	if s.BackInset < 0 {
		return &ParamError{Param: "back_inset", Value: s.BackInset, Constraint: "at least 0"}
	}
	return nil
}
