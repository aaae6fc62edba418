package validation

import (
	"math"
	"testing"

	"github.com/ChicagoDave/greenbuild/pkg/catalog"
	"github.com/ChicagoDave/greenbuild/pkg/design"
)

func validDesign() design.Configuration {
	return design.Default().
		WithOrientation(180).
		ToggleTechnology(catalog.TechTemperatureSensors).
		ToggleRenewable(catalog.RenewableSolarPV)
}

func TestValidateDesignValid(t *testing.T) {
	r := ValidateDesign(catalog.Default(), validDesign())
	if !r.Valid {
		t.Errorf("expected valid report, got %d errors: %v", len(r.Errors), r.Errors)
	}
}

func TestValidateDesignDefaultIsValid(t *testing.T) {
	r := ValidateDesign(catalog.Default(), design.Default())
	if !r.Valid {
		t.Errorf("default design should be valid, got %v", r.Errors)
	}
}

func TestValidateDesignOrientation(t *testing.T) {
	for _, o := range []float64{-1, 360, 720, math.NaN(), math.Inf(1)} {
		c := validDesign()
		c.Orientation = o
		r := ValidateDesign(catalog.Default(), c)
		if r.Valid {
			t.Errorf("orientation %v should be invalid", o)
			continue
		}
		if r.Errors[0].Field != "orientation" {
			t.Errorf("field = %q, want orientation", r.Errors[0].Field)
		}
	}
}

func TestValidateDesignFloorArea(t *testing.T) {
	for _, a := range []float64{0, -10, math.NaN()} {
		c := validDesign().WithFloorArea(a)
		r := ValidateDesign(catalog.Default(), c)
		if r.Valid {
			t.Errorf("floor area %v should be invalid", a)
		}
	}
}

func TestValidateDesignUnknownArchetype(t *testing.T) {
	c := validDesign().WithArchetype("passivhaus")
	r := ValidateDesign(catalog.Default(), c)
	if r.Valid {
		t.Fatal("unknown archetype should be invalid")
	}
	if len(r.Errors[0].Suggestions) != 6 {
		t.Errorf("suggestions = %d, want all 6 archetype IDs", len(r.Errors[0].Suggestions))
	}
}

func TestValidateDesignUnknownSelections(t *testing.T) {
	c := validDesign().ToggleTechnology("heat-recovery").ToggleRenewable("tidal").ToggleRenewable("hydro")
	r := ValidateDesign(catalog.Default(), c)
	if r.Valid {
		t.Fatal("unknown selections should be invalid")
	}
	if len(r.Errors) != 3 {
		t.Errorf("errors = %d, want 3 (one per unknown ID)", len(r.Errors))
	}
	if r.Summary != "3 errors, 0 warnings, 0 info" {
		t.Errorf("unexpected summary: %s", r.Summary)
	}
}
