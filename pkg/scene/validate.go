package scene

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/greenbuild/pkg/validation"
)

// ValidateGraph performs structural validation on a building model.
// It checks entity IDs, group index consistency, dimensions and rotations.
func ValidateGraph(g *Graph) *validation.Report {
	r := validation.NewReport()

	if g == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelScene,
			Message: "scene graph is nil",
		})
		return r
	}

	validateEntityIDs(g, r)
	validateGroupIndices(g, r)
	validateEntityDimensions(g, r)
	validateRotations(g, r)

	return r
}

func validateEntityIDs(g *Graph, r *validation.Report) {
	seen := make(map[string]int, len(g.Entities))

	for i, e := range g.Entities {
		if e.ID == "" {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity at index %d has empty ID", i),
				Field:       fmt.Sprintf("entities[%d].id", i),
				ActualValue: "",
				Expected:    "non-empty string",
			})
			continue
		}
		if prev, exists := seen[e.ID]; exists {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("duplicate entity ID %q at indices %d and %d", e.ID, prev, i),
				Field:       fmt.Sprintf("entities[%d].id", i),
				ActualValue: e.ID,
			})
		}
		seen[e.ID] = i
	}
}

func validateGroupIndices(g *Graph, r *validation.Report) {
	types := make(map[string]EntityType, len(g.Entities))
	for _, e := range g.Entities {
		types[e.ID] = e.Type
	}

	grouped := 0
	for et, ids := range g.Groups.EntityTypes {
		for _, id := range ids {
			grouped++
			actual, ok := types[id]
			if !ok {
				r.AddError(validation.Result{
					Level:       validation.LevelScene,
					Message:     fmt.Sprintf("group entity_types.%s references non-existent entity %q", et, id),
					Field:       fmt.Sprintf("groups.entity_types.%s", et),
					ActualValue: id,
					Expected:    "existing entity ID",
				})
				continue
			}
			if actual != et {
				r.AddError(validation.Result{
					Level:       validation.LevelScene,
					Message:     fmt.Sprintf("entity %q has type %q but is grouped under %q", id, actual, et),
					Field:       fmt.Sprintf("groups.entity_types.%s", et),
					ActualValue: id,
				})
			}
		}
	}

	if grouped != len(g.Entities) {
		r.AddWarning(validation.Result{
			Level:       validation.LevelScene,
			Message:     fmt.Sprintf("%d entities but %d grouped IDs", len(g.Entities), grouped),
			Field:       "groups.entity_types",
			ActualValue: grouped,
			Expected:    fmt.Sprint(len(g.Entities)),
		})
	}
}

func validateEntityDimensions(g *Graph, r *validation.Report) {
	for i, e := range g.Entities {
		d := e.Dimensions
		if d.X <= 0 || d.Z <= 0 || d.Y < 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity %q has non-positive dimensions %.2f×%.2f×%.2f", e.ID, d.X, d.Y, d.Z),
				Field:       fmt.Sprintf("entities[%d].dimensions", i),
				ActualValue: d,
				Expected:    "x > 0, z > 0, y >= 0",
			})
		}
	}
}

func validateRotations(g *Graph, r *validation.Report) {
	check := func(field string, q [4]float64) {
		norm := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
		if math.Abs(norm-1) > 1e-6 {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("rotation quaternion has norm %.4f", norm),
				Field:       field,
				ActualValue: q,
				Expected:    "unit quaternion",
			})
		}
	}

	check("rotation", g.Rotation)
	for i, e := range g.Entities {
		check(fmt.Sprintf("entities[%d].rotation", i), e.Rotation)
	}
}
