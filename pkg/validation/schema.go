package validation

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/greenbuild/pkg/catalog"
	"github.com/ChicagoDave/greenbuild/pkg/design"
)

// ValidateDesign performs schema validation on a configuration against a
// catalog. It checks ranges and catalog references before any computation.
func ValidateDesign(cat *catalog.Catalog, c design.Configuration) *Report {
	r := NewReport()

	validateOrientation(c, r)
	validateFloorArea(c, r)
	validateArchetype(cat, c, r)
	validateTechnologies(cat, c, r)
	validateRenewables(cat, c, r)

	return r
}

func validateOrientation(c design.Configuration, r *Report) {
	o := c.Orientation
	if math.IsNaN(o) || math.IsInf(o, 0) || o < 0 || o >= 360 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("orientation %v is outside the valid range [0, 360)", o),
			Field:       "orientation",
			ActualValue: fmt.Sprint(o),
			Expected:    "0 <= orientation < 360",
			Suggestions: []string{"Use degrees clockwise from north, e.g. 180 for south-facing"},
		})
	}
}

func validateFloorArea(c design.Configuration, r *Report) {
	a := c.FloorArea
	if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "floor_area must be a finite value greater than 0",
			Field:       "floor_area",
			ActualValue: fmt.Sprint(a),
			Expected:    "> 0",
		})
	}
}

func validateArchetype(cat *catalog.Catalog, c design.Configuration, r *Report) {
	if _, ok := cat.Archetype(c.Archetype); ok {
		return
	}
	r.AddError(Result{
		Level:       LevelSchema,
		Message:     fmt.Sprintf("unknown archetype %q", c.Archetype),
		Field:       "archetype",
		ActualValue: c.Archetype,
		Expected:    "a catalog archetype ID",
		Suggestions: cat.ArchetypeIDs(),
	})
}

func validateTechnologies(cat *catalog.Catalog, c design.Configuration, r *Report) {
	for _, id := range c.Technologies.IDs() {
		if _, ok := cat.Technology(id); ok {
			continue
		}
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown technology %q", id),
			Field:       "technologies",
			ActualValue: id,
			Expected:    "a catalog technology ID",
			Suggestions: cat.TechnologyIDs(),
		})
	}
}

func validateRenewables(cat *catalog.Catalog, c design.Configuration, r *Report) {
	for _, id := range c.Renewables.IDs() {
		if _, ok := cat.Renewable(id); ok {
			continue
		}
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown renewable system %q", id),
			Field:       "renewables",
			ActualValue: id,
			Expected:    "a catalog renewable ID",
			Suggestions: cat.RenewableIDs(),
		})
	}
}
