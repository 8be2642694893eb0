package cabinet

import (
	"sort"
	"sync"

	"github.com/DoubleBridges/millnodes/pkg/geom"
)

// Session-scoped definition names.
const (
	DefaultPanelName   = "Panel"
	DefaultCarcassName = "Carcass"
)

// ParamKind distinguishes parameter interface entries.
type ParamKind int

const (
	ParamDistance ParamKind = iota // meters, bounded below
	ParamToggle                    // boolean, 0 or 1
	ParamChoice                    // enum, e.g. grain direction
)

// ParamSpec is one entry of a definition's parameter interface: the
// configuration surface exposed to any caller (CLI flags, spec files,
// script keywords). Defaults and minimum bounds are part of the
// definition so every caller presents the same surface.
type ParamSpec struct {
	Name    string
	Kind    ParamKind
	Default float64
	Min     float64
}

// Values carries caller-supplied parameter values keyed by parameter
// name. Missing entries fall back to the definition defaults; toggles
// are 0 or 1.
type Values map[string]float64

func (v Values) float(name string, def float64) float64 {
	if val, ok := v[name]; ok {
		return val
	}
	return def
}

func (v Values) bool(name string, def bool) bool {
	if val, ok := v[name]; ok {
		return val >= 0.5
	}
	return def
}

// Build is the output of evaluating a definition: the joined mesh and,
// for carcasses, the part placements and interior cavity.
type Build struct {
	Definition string       `json:"definition"`
	Mesh       *geom.Mesh   `json:"mesh"`
	Parts      []PlacedPart `json:"parts,omitempty"`
	Interior   *InteriorBox `json:"interior,omitempty"`
}

// Definition is a named, reusable builder: a parameter interface plus
// a build function. Definitions are created once per name through a
// Registry and then shared.
type Definition struct {
	Name   string
	Params []ParamSpec

	build func(Values) (*Build, error)
}

// Build evaluates the definition with the given values.
func (d *Definition) Build(vals Values) (*Build, error) {
	return d.build(vals)
}

// Param returns the named parameter spec, if present.
func (d *Definition) Param(name string) (ParamSpec, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}
	return ParamSpec{}, false
}

// NewPanelDefinition creates the panel builder definition.
func NewPanelDefinition() *Definition {
	def := DefaultPanelSpec()
	d := &Definition{
		Name: DefaultPanelName,
		Params: []ParamSpec{
			{Name: "length", Kind: ParamDistance, Default: def.Length, Min: MinDim},
			{Name: "width", Kind: ParamDistance, Default: def.Width, Min: MinDim},
			{Name: "thickness", Kind: ParamDistance, Default: def.Thickness, Min: MinDim},
			{Name: "grain", Kind: ParamChoice, Default: float64(def.Grain)},
		},
	}
	d.build = func(vals Values) (*Build, error) {
		spec := PanelSpec{
			Length:    vals.float("length", def.Length),
			Width:     vals.float("width", def.Width),
			Thickness: vals.float("thickness", def.Thickness),
			Grain:     Grain(vals.float("grain", float64(def.Grain))),
		}
		m, err := BuildPanel(spec)
		if err != nil {
			return nil, err
		}
		return &Build{Definition: d.Name, Mesh: m}, nil
	}
	return d
}

// NewCarcassDefinition creates the carcass builder definition. The
// panel definition is ensured first: a carcass is assembled entirely
// from panels, so the leaf definition must exist before the carcass
// can build.
func NewCarcassDefinition(r *Registry) *Definition {
	r.Panel()

	def := DefaultCarcassSpec()
	d := &Definition{
		Name: DefaultCarcassName,
		Params: []ParamSpec{
			{Name: "width", Kind: ParamDistance, Default: def.Width, Min: MinDim},
			{Name: "height", Kind: ParamDistance, Default: def.Height, Min: MinDim},
			{Name: "depth", Kind: ParamDistance, Default: def.Depth, Min: MinDim},
			{Name: "material_thickness", Kind: ParamDistance, Default: def.MaterialThickness, Min: MinDim},
			{Name: "back_thickness", Kind: ParamDistance, Default: def.BackThickness, Min: MinDim},
			{Name: "back_inset", Kind: ParamDistance, Default: def.BackInset, Min: 0},
			{Name: "nailer_width", Kind: ParamDistance, Default: def.NailerWidth, Min: MinDim},
			{Name: "include_top", Kind: ParamToggle, Default: 1},
			{Name: "include_bottom", Kind: ParamToggle, Default: 1},
			{Name: "include_back", Kind: ParamToggle, Default: 1},
		},
	}
	d.build = func(vals Values) (*Build, error) {
		spec := CarcassSpec{
			Width:             vals.float("width", def.Width),
			Height:            vals.float("height", def.Height),
			Depth:             vals.float("depth", def.Depth),
			MaterialThickness: vals.float("material_thickness", def.MaterialThickness),
			BackThickness:     vals.float("back_thickness", def.BackThickness),
			BackInset:         vals.float("back_inset", def.BackInset),
			NailerWidth:       vals.float("nailer_width", def.NailerWidth),
			IncludeTop:        vals.bool("include_top", true),
			IncludeBottom:     vals.bool("include_bottom", true),
			IncludeBack:       vals.bool("include_back", true),
		}
		c, err := BuildCarcass(spec)
		if err != nil {
			return nil, err
		}
		return &Build{Definition: d.Name, Mesh: c.Mesh, Parts: c.Parts, Interior: &c.Interior}, nil
	}
	return d
}

// Registry holds named builder definitions with get-or-create
// semantics: within one registry a name resolves to at most one
// definition, ever. Its lifecycle belongs to the caller; there is no
// package-level registry.
type Registry struct {
	mu   sync.Mutex
	defs map[string]*Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// GetOrCreate returns the definition registered under name, creating
// it with create on first use. create runs outside the lock so it may
// itself call back into the registry (the carcass definition ensures
// the panel definition); if two callers race, the first stored
// definition wins and the loser's is discarded.
func (r *Registry) GetOrCreate(name string, create func() *Definition) *Definition {
	r.mu.Lock()
	if d, ok := r.defs[name]; ok {
		r.mu.Unlock()
		return d
	}
	r.mu.Unlock()

	d := create()

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.defs[name]; ok {
		return existing
	}
	r.defs[name] = d
	return d
}

// Get returns the definition registered under name, if any.
func (r *Registry) Get(name string) (*Definition, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.defs[name]
	return d, ok
}

// Names returns the registered definition names, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.defs))
	for n := range r.defs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Panel returns the session's panel definition, creating it on first use.
func (r *Registry) Panel() *Definition {
	return r.GetOrCreate(DefaultPanelName, NewPanelDefinition)
}

// Carcass returns the session's carcass definition, creating it (and
// the panel definition it depends on) on first use.
func (r *Registry) Carcass() *Definition {
	return r.GetOrCreate(DefaultCarcassName, func() *Definition {
		return NewCarcassDefinition(r)
	})
}
