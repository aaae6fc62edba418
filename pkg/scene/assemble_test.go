package scene

import (
	"math"
	"testing"

	"github.com/ChicagoDave/greenbuild/pkg/catalog"
	"github.com/ChicagoDave/greenbuild/pkg/design"
)

func assembleFor(t *testing.T, archetype string, orientation float64) *Graph {
	t.Helper()
	c := design.Default().WithArchetype(archetype).WithOrientation(orientation)
	return Assemble(catalog.Default(), c)
}

func TestAssembleEntityCountsByTier(t *testing.T) {
	tests := []struct {
		archetype string
		roofs     int
		panels    int
		total     int
	}{
		{catalog.ArchetypeBaseline, 0, 0, 12},
		{catalog.ArchetypeImproved, 0, 0, 12},
		{catalog.ArchetypeHighPerformance, 1, 0, 13},
		{catalog.ArchetypeLowEnergy, 1, 0, 13},
		{catalog.ArchetypeNetZero, 1, 20, 33},
		{catalog.ArchetypeSmartNetZero, 1, 20, 33},
	}
	for _, tt := range tests {
		g := assembleFor(t, tt.archetype, 0)
		if got := len(g.ByType(EntityRoof)); got != tt.roofs {
			t.Errorf("%s: roofs = %d, want %d", tt.archetype, got, tt.roofs)
		}
		if got := len(g.ByType(EntityPanel)); got != tt.panels {
			t.Errorf("%s: panels = %d, want %d", tt.archetype, got, tt.panels)
		}
		if got := len(g.Entities); got != tt.total {
			t.Errorf("%s: entities = %d, want %d", tt.archetype, got, tt.total)
		}
		if got := len(g.ByType(EntityWindow)); got != 10 {
			t.Errorf("%s: windows = %d, want 10", tt.archetype, got)
		}
	}
}

func TestAssembleBodyColorFollowsArchetype(t *testing.T) {
	for _, a := range catalog.Default().Archetypes() {
		g := assembleFor(t, a.ID, 0)
		body := g.ByType(EntityBody)
		if len(body) != 1 {
			t.Fatalf("%s: expected one body, got %d", a.ID, len(body))
		}
		if body[0].Color != a.Color {
			t.Errorf("%s: body color = %#06x, want %#06x", a.ID, body[0].Color, a.Color)
		}
	}
}

func TestAssembleRotation(t *testing.T) {
	g := assembleFor(t, catalog.ArchetypeBaseline, 0)
	if g.Rotation != identityQuat() {
		t.Errorf("0° rotation = %v, want identity", g.Rotation)
	}

	g = assembleFor(t, catalog.ArchetypeBaseline, 180)
	// 180° yaw: [0, 1, 0, ~0]
	if math.Abs(g.Rotation[1]-1) > 1e-9 || math.Abs(g.Rotation[3]) > 1e-9 {
		t.Errorf("180° rotation = %v, want [0 1 0 0]", g.Rotation)
	}
}

func TestAssembleFootprintRotates(t *testing.T) {
	g := assembleFor(t, catalog.ArchetypeBaseline, 90)
	fp := g.Metadata.Footprint
	if len(fp) != 4 {
		t.Fatalf("footprint corners = %d, want 4", len(fp))
	}
	// After a quarter turn the 2 × 1.5 body spans 1.5 in X and 2 in Z.
	minX, maxX, minZ, maxZ := math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
	for _, p := range fp {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minZ, maxZ = math.Min(minZ, p[1]), math.Max(maxZ, p[1])
	}
	if math.Abs((maxX-minX)-1.5) > 1e-9 || math.Abs((maxZ-minZ)-2) > 1e-9 {
		t.Errorf("rotated footprint spans %.3f × %.3f, want 1.5 × 2", maxX-minX, maxZ-minZ)
	}
}

func TestAssembleMetadata(t *testing.T) {
	g := assembleFor(t, catalog.ArchetypeNetZero, 45)
	if g.Metadata.Archetype != catalog.ArchetypeNetZero {
		t.Errorf("archetype = %q, want %q", g.Metadata.Archetype, catalog.ArchetypeNetZero)
	}
	if g.Metadata.Orientation != 45 {
		t.Errorf("orientation = %v, want 45", g.Metadata.Orientation)
	}
	if g.Metadata.GeneratedAt == "" {
		t.Error("generated_at is empty")
	}
	b := g.Metadata.Bounds
	if b.Min.X != -groundSize/2 || b.Max.X != groundSize/2 {
		t.Errorf("bounds x = [%v, %v], want ground extent", b.Min.X, b.Max.X)
	}
	if math.Abs(b.Max.Y-3.16) > 1e-9 {
		t.Errorf("bounds max y = %v, want panel top 3.16", b.Max.Y)
	}
}

func TestAssembleGroupsMatchEntities(t *testing.T) {
	g := assembleFor(t, catalog.ArchetypeSmartNetZero, 300)
	total := 0
	for _, ids := range g.Groups.EntityTypes {
		total += len(ids)
	}
	if total != len(g.Entities) {
		t.Errorf("grouped IDs = %d, entities = %d", total, len(g.Entities))
	}
}

func TestAssembledGraphsValidate(t *testing.T) {
	for _, a := range catalog.Default().Archetypes() {
		for _, o := range []float64{0, 90, 137, 359} {
			r := ValidateGraph(assembleFor(t, a.ID, o))
			if !r.Valid {
				t.Errorf("%s at %v°: %d errors, first: %s", a.ID, o, len(r.Errors), r.Errors[0].Message)
			}
			if len(r.Warnings) != 0 {
				t.Errorf("%s at %v°: unexpected warnings %v", a.ID, o, r.Warnings)
			}
		}
	}
}
