package cabinet

import "fmt"

// atLeastMinDim is the constraint text shared by every distance parameter.
const atLeastMinDim = "at least 0.001"

// ParamError reports a parameter or derived quantity that violated its
// constraint. Param names either a caller-supplied parameter
// ("material_thickness") or a derived quantity ("interior_width") so
// the failure is attributable without parsing the message.
type ParamError struct {
	Param      string
	Value      float64
	Constraint string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("parameter %q = %g: must be %s", e.Param, e.Value, e.Constraint)
}
