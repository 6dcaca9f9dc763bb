package bubble

import (
	"fmt"
	"image"
)

// A PixelSet is an insertion-ordered set of pixel coordinates. Remove
// moves the last member into the hole it leaves, so Contains, Add and
// Remove are all O(1), and the order stays deterministic for a given
// sequence of operations. FirstSeeder and RandomSeeder pick members by
// position, so their output depends on this order.
type PixelSet struct {
	index  map[image.Point]int
	points []image.Point
}

func NewPixelSet() *PixelSet {
	return &PixelSet{index: map[image.Point]int{}}
}

func NewPixelSetFromPoints(pts []image.Point) *PixelSet {
	s := &PixelSet{
		index:  make(map[image.Point]int, len(pts)),
		points: make([]image.Point, 0, len(pts)),
	}
	for _, p := range pts {
		s.Add(p)
	}
	return s
}

func (s *PixelSet) String() string { return fmt.Sprintf("PixelSet[%d]", len(s.points)) }

func (s *PixelSet) Len() int                  { return len(s.points) }
func (s *PixelSet) At(i int) image.Point      { return s.points[i] }
func (s *PixelSet) Contains(p image.Point) bool {
	_, exists := s.index[p]
	return exists
}

// Add inserts p at the end of the order; false if it was already there.
func (s *PixelSet) Add(p image.Point) bool {
	if s.Contains(p) {
		return false
	}
	s.index[p] = len(s.points)
	s.points = append(s.points, p)
	return true
}

// Remove deletes p; false if it was not a member.
func (s *PixelSet) Remove(p image.Point) bool {
	i, exists := s.index[p]
	if !exists {
		return false
	}

	last := len(s.points) - 1
	if i != last {
		moved := s.points[last]
		s.points[i] = moved
		s.index[moved] = i
	}
	s.points = s.points[:last]
	delete(s.index, p)
	return true
}

// RemoveDisc removes every pixel of the disc, returning how many were members.
func (s *PixelSet) RemoveDisc(cx, cy, r int) int {
	n := 0
	for _, p := range DiscPixels(cx, cy, r) {
		if s.Remove(p) {
			n++
		}
	}
	return n
}

// Points returns a copy of the members, in set order.
func (s *PixelSet) Points() []image.Point {
	return append([]image.Point(nil), s.points...)
}

func (s *PixelSet) Clone() *PixelSet {
	c := &PixelSet{
		index:  make(map[image.Point]int, len(s.points)),
		points: append([]image.Point(nil), s.points...),
	}
	for p, i := range s.index {
		c.index[p] = i
	}
	return c
}

// Mask rasterises the set into a w*h row-major grid. Members outside
// the grid are left out.
func (s *PixelSet) Mask(w, h int) []bool {
	mask := make([]bool, w*h)
	for _, p := range s.points {
		if p.X >= 0 && p.Y >= 0 && p.X < w && p.Y < h {
			mask[p.Y*w+p.X] = true
		}
	}
	return mask
}
