package engine

import "github.com/kamstrup/intmap"

// CoordSet is an insertion-ordered set of grid coordinates.
// Membership is keyed by a packed integer so duplicates from overlapping
// runs or effects collapse without string keys.
type CoordSet struct {
	index  *intmap.Map[uint32, int]
	coords []Coord
}

// NewCoordSet creates an empty set sized for roughly capacity entries.
func NewCoordSet(capacity int) *CoordSet {
	return &CoordSet{
		index:  intmap.New[uint32, int](capacity),
		coords: make([]Coord, 0, capacity),
	}
}

// packCoord packs a non-negative coordinate into a single key.
func packCoord(c Coord) uint32 {
	return uint32(c.Y)<<16 | uint32(c.X)&0xFFFF
}

// Add inserts c and reports whether it was not already present.
func (s *CoordSet) Add(c Coord) bool {
	key := packCoord(c)
	if _, ok := s.index.Get(key); ok {
		return false
	}
	s.index.Put(key, len(s.coords))
	s.coords = append(s.coords, c)
	return true
}

// AddAll inserts every coordinate of other.
func (s *CoordSet) AddAll(other *CoordSet) {
	if other == nil {
		return
	}
	for _, c := range other.coords {
		s.Add(c)
	}
}

// Has reports whether c is in the set.
func (s *CoordSet) Has(c Coord) bool {
	_, ok := s.index.Get(packCoord(c))
	return ok
}

// Len returns the number of distinct coordinates.
func (s *CoordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.coords)
}

// Coords returns the members in insertion order. The slice must not be modified.
func (s *CoordSet) Coords() []Coord {
	if s == nil {
		return nil
	}
	return s.coords
}
