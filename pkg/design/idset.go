package design

import (
	"encoding/json"
	"sort"

	"gopkg.in/yaml.v3"
)

// IDSet is an immutable, unordered set of catalog IDs. The zero value is an
// empty set. Mutating operations return a new set.
type IDSet struct {
	ids map[string]struct{}
}

// NewIDSet returns a set holding the given IDs; duplicates collapse.
func NewIDSet(ids ...string) IDSet {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return IDSet{ids: m}
}

// Has reports whether id is in the set.
func (s IDSet) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of IDs in the set.
func (s IDSet) Len() int {
	return len(s.ids)
}

// IDs returns the members in sorted order.
func (s IDSet) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// With returns a set that also contains id.
func (s IDSet) With(id string) IDSet {
	if s.Has(id) {
		return s
	}
	next := s.clone(len(s.ids) + 1)
	next.ids[id] = struct{}{}
	return next
}

// Without returns a set that does not contain id.
func (s IDSet) Without(id string) IDSet {
	if !s.Has(id) {
		return s
	}
	next := s.clone(len(s.ids))
	delete(next.ids, id)
	return next
}

// Toggle adds id when absent and removes it when present.
func (s IDSet) Toggle(id string) IDSet {
	if s.Has(id) {
		return s.Without(id)
	}
	return s.With(id)
}

// Equal reports whether both sets hold the same IDs.
func (s IDSet) Equal(other IDSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for id := range s.ids {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

func (s IDSet) clone(capacity int) IDSet {
	m := make(map[string]struct{}, capacity)
	for id := range s.ids {
		m[id] = struct{}{}
	}
	return IDSet{ids: m}
}

// MarshalYAML encodes the set as a sorted sequence.
func (s IDSet) MarshalYAML() (any, error) {
	return s.IDs(), nil
}

// UnmarshalYAML decodes a sequence of IDs.
func (s *IDSet) UnmarshalYAML(value *yaml.Node) error {
	var ids []string
	if err := value.Decode(&ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}

// MarshalJSON encodes the set as a sorted array.
func (s IDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

// UnmarshalJSON decodes an array of IDs. A JSON null yields an empty set.
func (s *IDSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}
