package bubble

import (
	"fmt"
	"image"
)

// A Circle is a bubble: centre and radius in pixels.
type Circle struct {
	X, Y int
	R    int
}

func (c Circle) String() string       { return fmt.Sprintf("[%d,%d,%d]", c.X, c.Y, c.R) }
func (c Circle) Center() image.Point  { return image.Point{c.X, c.Y} }
func (c Circle) Pixels() []image.Point { return DiscPixels(c.X, c.Y, c.R) }

// Coverage returns the union of the circles' discs, in circle order.
func Coverage(circles []Circle) *PixelSet {
	s := NewPixelSet()
	for _, c := range circles {
		for _, p := range c.Pixels() {
			s.Add(p)
		}
	}
	return s
}
