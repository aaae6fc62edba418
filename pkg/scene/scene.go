package scene

// EntityType identifies the kind of entity.
type EntityType string

const (
	EntityGround EntityType = "ground"
	EntityBody   EntityType = "body"
	EntityWindow EntityType = "window"
	EntityRoof   EntityType = "roof"
	EntityPanel  EntityType = "panel"
)

// Vec3 is a 3D vector. Y is up.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// BoundingBox defines an axis-aligned bounding box.
type BoundingBox struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

// Entity is a single box in the building model, positioned in the
// building's local frame.
type Entity struct {
	ID         string         `json:"id"`
	Type       EntityType     `json:"type"`
	Position   Vec3           `json:"position"`
	Dimensions Vec3           `json:"dimensions"`
	Rotation   [4]float64     `json:"rotation"` // quaternion [x, y, z, w]
	Color      int            `json:"color"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Graph is the complete building model. Rotation applies to every
// entity except the ground.
type Graph struct {
	Metadata Metadata   `json:"metadata"`
	Rotation [4]float64 `json:"rotation"`
	Entities []Entity   `json:"entities"`
	Groups   Groups     `json:"groups"`
}

// Metadata holds model-level information.
type Metadata struct {
	Archetype   string       `json:"archetype"`
	Orientation float64      `json:"orientation"`
	GeneratedAt string       `json:"generated_at"`
	Bounds      BoundingBox  `json:"bounds"`
	Footprint   [][2]float64 `json:"footprint"` // rotated body corners in the XZ plane
}

// Groups organizes entity IDs by type for fast filtering.
type Groups struct {
	EntityTypes map[EntityType][]string `json:"entity_types"`
}

// NewGraph creates an empty model.
func NewGraph() *Graph {
	return &Graph{
		Rotation: identityQuat(),
		Entities: []Entity{},
		Groups: Groups{
			EntityTypes: make(map[EntityType][]string),
		},
	}
}

// ByType returns the entities of one type in insertion order.
func (g *Graph) ByType(t EntityType) []Entity {
	var out []Entity
	for _, e := range g.Entities {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
