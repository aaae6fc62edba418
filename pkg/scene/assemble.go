package scene

import (
	"fmt"
	"math"
	"time"

	"github.com/ChicagoDave/greenbuild/pkg/catalog"
	"github.com/ChicagoDave/greenbuild/pkg/design"
)

// Model dimensions in scene units. Positions are box centres.
const (
	bodyWidth  = 2.0
	bodyHeight = 3.0
	bodyDepth  = 1.5
	groundSize = 20.0

	roofTier  = 2 // archetype tier from which the roof slab is drawn
	panelTier = 4 // archetype tier from which roof panels are drawn
)

// Material colours.
const (
	groundColor = 0x98fb98
	windowColor = 0x87ceeb
	roofColor   = 0x444444
	panelColor  = 0x000044
)

// Assemble builds the 3D building model for a configuration: archetype
// selects colour, roof and panels; orientation sets the model's yaw.
func Assemble(cat *catalog.Catalog, c design.Configuration) *Graph {
	g := NewGraph()
	arch, _ := cat.Archetype(c.Archetype)

	assembleGround(g)
	assembleBody(g, arch)
	assembleWindows(g)
	if arch.Tier >= roofTier {
		assembleRoof(g)
		if arch.Tier >= panelTier {
			assemblePanels(g)
		}
	}

	rad := c.Orientation * math.Pi / 180
	g.Rotation = yawQuat(rad)
	g.Metadata = Metadata{
		Archetype:   arch.ID,
		Orientation: c.Orientation,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Bounds:      computeBounds(g.Entities),
		Footprint:   footprint(rad),
	}

	return g
}

func assembleGround(g *Graph) {
	addEntity(g, Entity{
		ID:         "ground",
		Type:       EntityGround,
		Dimensions: Vec3{X: groundSize, Y: 0, Z: groundSize},
		Rotation:   identityQuat(),
		Color:      groundColor,
	})
}

func assembleBody(g *Graph, arch catalog.Archetype) {
	addEntity(g, Entity{
		ID:         "body",
		Type:       EntityBody,
		Position:   Vec3{X: 0, Y: bodyHeight / 2, Z: 0},
		Dimensions: Vec3{X: bodyWidth, Y: bodyHeight, Z: bodyDepth},
		Rotation:   identityQuat(),
		Color:      arch.Color,
		Metadata:   map[string]any{"archetype": arch.Name},
	})
}

func assembleWindows(g *Graph) {
	pane := Vec3{X: 0.3, Y: 0.4, Z: 0.02}

	// Front face: 3 columns × 2 rows.
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			addEntity(g, Entity{
				ID:         fmt.Sprintf("window-front-%d-%d", i, j),
				Type:       EntityWindow,
				Position:   Vec3{X: -0.6 + float64(i)*0.6, Y: 1.2 + float64(j)*0.6, Z: 0.76},
				Dimensions: pane,
				Rotation:   identityQuat(),
				Color:      windowColor,
				Metadata:   map[string]any{"face": "front"},
			})
		}
	}

	// Side face: 2 columns × 2 rows, turned to face +X.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			addEntity(g, Entity{
				ID:         fmt.Sprintf("window-side-%d-%d", i, j),
				Type:       EntityWindow,
				Position:   Vec3{X: 1.01, Y: 1.2 + float64(j)*0.6, Z: -0.3 + float64(i)*0.6},
				Dimensions: pane,
				Rotation:   yawQuat(math.Pi / 2),
				Color:      windowColor,
				Metadata:   map[string]any{"face": "side"},
			})
		}
	}
}

func assembleRoof(g *Graph) {
	addEntity(g, Entity{
		ID:         "roof",
		Type:       EntityRoof,
		Position:   Vec3{X: 0, Y: 3.05, Z: 0},
		Dimensions: Vec3{X: 2.2, Y: 0.1, Z: 1.7},
		Rotation:   identityQuat(),
		Color:      roofColor,
	})
}

func assemblePanels(g *Graph) {
	for i := 0; i < 5; i++ {
		for j := 0; j < 4; j++ {
			addEntity(g, Entity{
				ID:         fmt.Sprintf("panel-%d-%d", i, j),
				Type:       EntityPanel,
				Position:   Vec3{X: -0.8 + float64(i)*0.4, Y: 3.15, Z: -0.6 + float64(j)*0.4},
				Dimensions: Vec3{X: 0.4, Y: 0.02, Z: 0.3},
				Rotation:   identityQuat(),
				Color:      panelColor,
			})
		}
	}
}

func addEntity(g *Graph, e Entity) {
	g.Entities = append(g.Entities, e)
	g.Groups.EntityTypes[e.Type] = append(g.Groups.EntityTypes[e.Type], e.ID)
}

// computeBounds calculates the AABB of all entities in the local frame.
func computeBounds(entities []Entity) BoundingBox {
	if len(entities) == 0 {
		return BoundingBox{}
	}
	minV := Vec3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}
	maxV := Vec3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64}

	for _, e := range entities {
		half := Vec3{X: e.Dimensions.X / 2, Y: e.Dimensions.Y / 2, Z: e.Dimensions.Z / 2}

		minV.X = math.Min(minV.X, e.Position.X-half.X)
		maxV.X = math.Max(maxV.X, e.Position.X+half.X)
		minV.Y = math.Min(minV.Y, e.Position.Y-half.Y)
		maxV.Y = math.Max(maxV.Y, e.Position.Y+half.Y)
		minV.Z = math.Min(minV.Z, e.Position.Z-half.Z)
		maxV.Z = math.Max(maxV.Z, e.Position.Z+half.Z)
	}
	return BoundingBox{Min: minV, Max: maxV}
}

// footprint returns the body's corners after a yaw of rad about +Y.
func footprint(rad float64) [][2]float64 {
	hx, hz := bodyWidth/2, bodyDepth/2
	corners := [][2]float64{{-hx, -hz}, {hx, -hz}, {hx, hz}, {-hx, hz}}

	c, s := math.Cos(rad), math.Sin(rad)
	out := make([][2]float64, len(corners))
	for i, p := range corners {
		// Right-handed yaw about +Y maps (x, z) to (x·c + z·s, −x·s + z·c).
		out[i] = [2]float64{p[0]*c + p[1]*s, -p[0]*s + p[1]*c}
	}
	return out
}

func identityQuat() [4]float64 {
	return [4]float64{0, 0, 0, 1}
}

func yawQuat(angle float64) [4]float64 {
	half := angle / 2
	return [4]float64{0, math.Sin(half), 0, math.Cos(half)}
}
