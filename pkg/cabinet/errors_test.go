package cabinet_test

import (
	"testing"

	"github.com/DoubleBridges/millnodes/pkg/cabinet"
)

func TestParamErrorMessage(t *testing.T) {
	err := &cabinet.ParamError{Param: "width", Value: 0, Constraint: "at least 0.001"}
	want := `parameter "width" = 0: must be at least 0.001`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
