package mipsmemory

// SegmentEntry is one named value in a data segment. Its rank in the
// segment's entry list is also the index of the storage cell it seeds.
type SegmentEntry struct {
	Name  string
	Value uint32
}

// Segment is an ordered collection of named data values. The order is
// load-bearing: the first entry occupies cell 0, the second cell 1, and so
// on. Making the rank explicit in a list (rather than inferred from a map's
// iteration order) is deliberate; see the package documentation.
type Segment struct {
	entries []SegmentEntry
	ranks   map[string]int
}

// NewSegment creates an empty data segment.
func NewSegment() *Segment {
	return &Segment{
		ranks: make(map[string]int),
	}
}

// Define sets the value for name. A new name is appended, taking the next
// rank; an existing name keeps its rank and has its value replaced.
func (s *Segment) Define(name string, value uint32) {
	if i, ok := s.ranks[name]; ok {
		s.entries[i].Value = value
		return
	}
	s.ranks[name] = len(s.entries)
	s.entries = append(s.entries, SegmentEntry{Name: name, Value: value})
}

// Lookup returns the rank of name, and whether it is defined.
func (s *Segment) Lookup(name string) (int, bool) {
	i, ok := s.ranks[name]
	return i, ok
}

// Value returns the current value for name, and whether it is defined.
func (s *Segment) Value(name string) (uint32, bool) {
	i, ok := s.ranks[name]
	if !ok {
		return 0, false
	}
	return s.entries[i].Value, true
}

// Len returns the number of entries.
func (s *Segment) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entry list in rank order.
func (s *Segment) Entries() []SegmentEntry {
	out := make([]SegmentEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clone returns a deep copy of the segment.
func (s *Segment) Clone() *Segment {
	c := &Segment{
		entries: make([]SegmentEntry, len(s.entries)),
		ranks:   make(map[string]int, len(s.ranks)),
	}
	copy(c.entries, s.entries)
	for k, v := range s.ranks {
		c.ranks[k] = v
	}
	return c
}
