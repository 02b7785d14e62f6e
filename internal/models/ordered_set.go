package models

import (
	"encoding/json"
	"strings"
)

// OrderedSet is a set of strings that remembers insertion order. Multi-select
// form fields use it so toggling twice is a no-op and display order is stable.
type OrderedSet struct {
	order []string
	index map[string]struct{}
}

func NewOrderedSet(values ...string) OrderedSet {
	var s OrderedSet
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v if absent. It reports whether the set changed.
func (s *OrderedSet) Add(v string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

// Remove deletes v if present. It reports whether the set changed.
func (s *OrderedSet) Remove(v string) bool {
	if _, ok := s.index[v]; !ok {
		return false
	}
	delete(s.index, v)
	for i, existing := range s.order {
		if existing == v {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Toggle flips membership of v and returns whether v is now a member.
func (s *OrderedSet) Toggle(v string) bool {
	if s.Remove(v) {
		return false
	}
	s.Add(v)
	return true
}

func (s OrderedSet) Has(v string) bool {
	_, ok := s.index[v]
	return ok
}

func (s OrderedSet) Len() int {
	return len(s.order)
}

// Values returns a copy in insertion order.
func (s OrderedSet) Values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s OrderedSet) String() string {
	return strings.Join(s.order, ", ")
}

// MarshalJSON always emits an array, empty sets included.
func (s OrderedSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON accepts an array or a comma-joined string, which is how some
// backend records store multi-select fields.
func (s *OrderedSet) UnmarshalJSON(data []byte) error {
	*s = OrderedSet{}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		for _, v := range list {
			s.Add(v)
		}
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	for _, part := range strings.Split(joined, ",") {
		if v := strings.TrimSpace(part); v != "" {
			s.Add(v)
		}
	}
	return nil
}
