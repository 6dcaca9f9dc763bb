package bubble

import (
	"fmt"

	"github.com/abworrall/mkbubble/pkg/emath"
)

var (
	Seeders = []string{"edt", "first", "random"}
)

func ListSeeders() string {
	return fmt.Sprintf("%v", Seeders)
}

// Config holds the packing parameters. It is passed to NewPacker
// explicitly, so different images (or parameter sets) can be packed
// side by side.
type Config struct {
	Verbosity int

	MaxRadius          int // Growth stops here; bounds the cost of each seed
	MinRadius          int // Circles smaller than this are rejected
	FirstPassMinRadius int // Acceptance threshold for pass 1 of a two-pass run; 0 means MaxRadius
	Passes             int // 1, or 2 for big-circles-first

	Seeder        string // see Seeders
	Kernel        string // distance transform used by the edt seeder, see emath.Kernels
	RandomSeed    int64  // for the random seeder
	MaxIterations int    // per pass; 0 means run until the set is empty

	Overlap               Overlap
	OverlapSecondPassOnly bool // pass 1 removes whole discs; the overlap only applies when building pass 2's set
}

func NewConfig() Config {
	return Config{
		MaxRadius:  25,
		MinRadius:  3,
		Passes:     1,
		Seeder:     "edt",
		Kernel:     "exact",
		RandomSeed: 1,
		Overlap:    Overlap{Mode: "subtract"},
	}
}

// Finalize fills in derived values, and does sanity checks.
func (c *Config) Finalize() error {
	if c.Passes == 0 {
		c.Passes = 1
	}
	if c.FirstPassMinRadius == 0 {
		c.FirstPassMinRadius = c.MaxRadius
	}
	if c.Overlap.Mode == "" {
		c.Overlap.Mode = "subtract"
	}
	if c.Seeder == "" {
		c.Seeder = "edt"
	}
	if c.Kernel == "" {
		c.Kernel = "exact"
	}

	switch {
	case c.MaxRadius < 1:
		return fmt.Errorf("maxradius must be >= 1, got %d", c.MaxRadius)
	case c.MinRadius < 1 || c.MinRadius > c.MaxRadius:
		return fmt.Errorf("minradius must be in [1, %d], got %d", c.MaxRadius, c.MinRadius)
	case c.FirstPassMinRadius < c.MinRadius || c.FirstPassMinRadius > c.MaxRadius:
		return fmt.Errorf("firstpassminradius must be in [%d, %d], got %d", c.MinRadius, c.MaxRadius, c.FirstPassMinRadius)
	case c.Passes != 1 && c.Passes != 2:
		return fmt.Errorf("passes must be 1 or 2, got %d", c.Passes)
	case c.MaxIterations < 0:
		return fmt.Errorf("maxiterations must be >= 0, got %d", c.MaxIterations)
	}

	if err := c.Overlap.Validate(); err != nil {
		return err
	}
	if _, err := emath.GetKernel(c.Kernel); err != nil {
		return err
	}
	for _, name := range Seeders {
		if name == c.Seeder {
			return nil
		}
	}
	return fmt.Errorf("no Seeder strategy named '%s', wanted %s", c.Seeder, ListSeeders())
}
