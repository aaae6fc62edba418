package catalog

import "sort"

// Catalog is the read-only reference data the metrics engine draws from.
// Entries are addressed by stable ID; slice order is display order only.
type Catalog struct {
	archetypes   []Archetype
	technologies []Technology
	renewables   []Renewable

	archetypeIdx  map[string]int
	technologyIdx map[string]int
	renewableIdx  map[string]int
}

// New builds a catalog from the given entries. Later entries with a
// duplicate ID replace earlier ones in lookups.
func New(archetypes []Archetype, technologies []Technology, renewables []Renewable) *Catalog {
	c := &Catalog{
		archetypes:    append([]Archetype(nil), archetypes...),
		technologies:  append([]Technology(nil), technologies...),
		renewables:    append([]Renewable(nil), renewables...),
		archetypeIdx:  make(map[string]int, len(archetypes)),
		technologyIdx: make(map[string]int, len(technologies)),
		renewableIdx:  make(map[string]int, len(renewables)),
	}
	for i, a := range c.archetypes {
		c.archetypeIdx[a.ID] = i
	}
	for i, t := range c.technologies {
		c.technologyIdx[t.ID] = i
	}
	for i, r := range c.renewables {
		c.renewableIdx[r.ID] = i
	}
	return c
}

var defaultCatalog = New(defaultArchetypes, defaultTechnologies, defaultRenewables)

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Archetypes returns a copy of all archetypes in display order.
func (c *Catalog) Archetypes() []Archetype {
	return append([]Archetype(nil), c.archetypes...)
}

// Technologies returns a copy of all technologies in display order.
func (c *Catalog) Technologies() []Technology {
	return append([]Technology(nil), c.technologies...)
}

// Renewables returns a copy of all renewable systems in display order.
func (c *Catalog) Renewables() []Renewable {
	return append([]Renewable(nil), c.renewables...)
}

// Archetype looks up an archetype by ID.
func (c *Catalog) Archetype(id string) (Archetype, bool) {
	i, ok := c.archetypeIdx[id]
	if !ok {
		return Archetype{}, false
	}
	return c.archetypes[i], true
}

// ArchetypeAt returns the archetype at a display position.
func (c *Catalog) ArchetypeAt(index int) (Archetype, bool) {
	if index < 0 || index >= len(c.archetypes) {
		return Archetype{}, false
	}
	return c.archetypes[index], true
}

// Technology looks up a technology by ID.
func (c *Catalog) Technology(id string) (Technology, bool) {
	i, ok := c.technologyIdx[id]
	if !ok {
		return Technology{}, false
	}
	return c.technologies[i], true
}

// Renewable looks up a renewable system by ID.
func (c *Catalog) Renewable(id string) (Renewable, bool) {
	i, ok := c.renewableIdx[id]
	if !ok {
		return Renewable{}, false
	}
	return c.renewables[i], true
}

// ArchetypeIDs returns all archetype IDs, sorted.
func (c *Catalog) ArchetypeIDs() []string {
	return sortedKeys(c.archetypeIdx)
}

// TechnologyIDs returns all technology IDs, sorted.
func (c *Catalog) TechnologyIDs() []string {
	return sortedKeys(c.technologyIdx)
}

// RenewableIDs returns all renewable IDs, sorted.
func (c *Catalog) RenewableIDs() []string {
	return sortedKeys(c.renewableIdx)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
