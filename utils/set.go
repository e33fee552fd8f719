package utils

// Set is a membership set of category values used by the filter predicates.
// It preserves first-seen insertion order so filter options and grouping
// output stay deterministic. A Set is built once and then only read, so no
// locking is needed.
type Set struct {
	seen  map[string]struct{}
	order []string
}

// NewSet creates a Set containing the given values.
func NewSet(values ...string) *Set {
	s := &Set{seen: make(map[string]struct{}, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts a value, returning true if it was newly added.
func (s *Set) Add(value string) bool {
	if _, exists := s.seen[value]; exists {
		return false
	}
	s.seen[value] = struct{}{}
	s.order = append(s.order, value)
	return true
}

// Contains reports whether the value is in the set.
func (s *Set) Contains(value string) bool {
	_, exists := s.seen[value]
	return exists
}

// Len returns the number of values in the set.
func (s *Set) Len() int {
	return len(s.seen)
}

// Values returns the values in first-seen order. The returned slice is a
// copy; mutating it does not affect the set.
func (s *Set) Values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
