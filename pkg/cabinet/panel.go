package cabinet

import "github.com/DoubleBridges/millnodes/pkg/geom"

// BuildPanel produces the panel's box mesh with its minimum corner at
// the local origin: X ∈ [0, Length], Y ∈ [0, Width], Z ∈ [0, Thickness].
// The corner-origin convention is what keeps carcass placement purely
// additive. Grain direction and panel length are stored on every face
// so the metadata survives orientation and joining.
//
// Invalid dimensions are rejected, never clamped.
func BuildPanel(spec PanelSpec) (*geom.Mesh, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	m := geom.Box(spec.Length, spec.Width, spec.Thickness)
	m.SetFaceInt(AttrGrainDirection, int(spec.Grain))
	m.SetFaceFloat(AttrPanelLength, spec.Length)
	return m, nil
}
