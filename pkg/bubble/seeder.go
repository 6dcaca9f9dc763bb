package bubble

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/abworrall/mkbubble/pkg/emath"
)

// A Seeder picks the centre for the next circle. It must not modify the
// set, and only returns false when the set is empty.
type Seeder interface {
	Next(set *PixelSet) (image.Point, bool)
}

// NewSeeder builds the named strategy. The edt seeder needs the image
// dimensions, to rasterise the set.
func NewSeeder(name string, w, h int, cfg Config) (Seeder, error) {
	switch name {
	case "first":
		return FirstSeeder{}, nil
	case "random":
		return NewRandomSeeder(cfg.RandomSeed), nil
	case "edt":
		kernel, err := emath.GetKernel(cfg.Kernel)
		if err != nil {
			return nil, err
		}
		return EDTSeeder{Width: w, Height: h, Kernel: kernel}, nil
	default:
		return nil, fmt.Errorf("no Seeder strategy named '%s', wanted %s", name, ListSeeders())
	}
}

// FirstSeeder takes whatever is at the front of the set. Fast, and
// entirely dependent on the set's order.
type FirstSeeder struct{}

func (FirstSeeder) Next(set *PixelSet) (image.Point, bool) {
	if set.Len() == 0 {
		return image.Point{}, false
	}
	return set.At(0), true
}

// RandomSeeder samples uniformly. The same seed over the same set gives
// the same sequence.
type RandomSeeder struct {
	rng *rand.Rand
}

func NewRandomSeeder(seed int64) *RandomSeeder {
	return &RandomSeeder{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomSeeder) Next(set *PixelSet) (image.Point, bool) {
	if set.Len() == 0 {
		return image.Point{}, false
	}
	return set.At(s.rng.Intn(set.Len())), true
}

// EDTSeeder returns the member farthest from any non-member, i.e. the
// centre of the biggest disc that could possibly fit. It recomputes the
// whole distance transform on every call.
type EDTSeeder struct {
	Width, Height int
	Kernel        emath.DistanceFunc
}

func (s EDTSeeder) Next(set *PixelSet) (image.Point, bool) {
	if set.Len() == 0 {
		return image.Point{}, false
	}

	kernel := s.Kernel
	if kernel == nil {
		kernel = emath.ExactDistance
	}
	if p, _, ok := emath.FarthestPoint(kernel, set.Mask(s.Width, s.Height), s.Width, s.Height); ok {
		return p, true
	}

	// Nothing inside the grid; the members must be out of bounds.
	return set.At(0), true
}
