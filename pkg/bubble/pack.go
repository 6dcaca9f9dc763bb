package bubble

import (
	"fmt"
	"image"
	"log"
)

// A Packer covers a pixel set with circles, greedily: seed, grow,
// accept or reject, remove, repeat. It is not safe for concurrent use
// (the random seeder carries state), but separate Packers are
// independent.
type Packer struct {
	Config
	Seeder Seeder

	// If set, Observer is called once per iteration, before anything is
	// removed from the set.
	Observer func(PassEvent)
}

// PassEvent describes one iteration of a pass. Set is the live set, and
// is only valid for the duration of the callback.
type PassEvent struct {
	Pass      int
	MinRadius int
	Seed      image.Point
	Circle    Circle
	Accepted  bool
	Set       *PixelSet
}

type PassStats struct {
	Name       string
	MinRadius  int
	Iterations int
	Accepted   int
	Rejected   int
	Remaining  int  // pixels left in the set when the pass stopped
	Truncated  bool // stopped by MaxIterations
}

func (ps PassStats) String() string {
	str := fmt.Sprintf("Pass[%s minR=%d, %d iterations, %d accepted, %d rejected",
		ps.Name, ps.MinRadius, ps.Iterations, ps.Accepted, ps.Rejected)
	if ps.Truncated {
		str += fmt.Sprintf(", truncated with %d left", ps.Remaining)
	}
	return str + "]"
}

type Result struct {
	Circles   []Circle // every accepted circle, in acceptance order
	FirstPass []Circle // the circles from pass 1, when two passes ran
	Passes    []PassStats
}

// NewPacker finalizes the config and builds its seeder. The image
// dimensions are needed by seeders that rasterise the set.
func NewPacker(cfg Config, w, h int) (*Packer, error) {
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	seeder, err := NewSeeder(cfg.Seeder, w, h, cfg)
	if err != nil {
		return nil, err
	}
	return &Packer{Config: cfg, Seeder: seeder}, nil
}

// Pack runs one or two passes over a copy of targets; targets itself is
// not modified.
func (p *Packer) Pack(targets *PixelSet) Result {
	res := Result{}

	if p.Passes < 2 {
		circles, stats := p.RunPass(targets.Clone(), 1, p.MinRadius, p.Overlap)
		res.Circles = circles
		res.Passes = append(res.Passes, stats)
		return res
	}

	// Pass 1 only keeps the biggest circles.
	pass1Overlap := p.Overlap
	if p.OverlapSecondPassOnly {
		pass1Overlap = Overlap{Mode: "subtract"}
	}
	first, stats1 := p.RunPass(targets.Clone(), 1, p.FirstPassMinRadius, pass1Overlap)

	// Pass 2 starts again from the targets, with the pass 1 circles cut
	// out (shrunk by the overlap), and fills the gaps with anything that
	// clears MinRadius.
	set := targets.Clone()
	for _, c := range first {
		set.RemoveDisc(c.X, c.Y, p.Overlap.RemovalRadius(c.R, p.MinRadius, p.MaxRadius))
	}
	second, stats2 := p.RunPass(set, 2, p.MinRadius, p.Overlap)

	res.FirstPass = first
	res.Circles = append(append([]Circle{}, first...), second...)
	res.Passes = append(res.Passes, stats1, stats2)
	return res
}

// RunPass consumes set until it is empty (or MaxIterations is reached),
// accepting circles with radius >= minR.
func (p *Packer) RunPass(set *PixelSet, pass, minR int, overlap Overlap) ([]Circle, PassStats) {
	circles := []Circle{}
	stats := PassStats{Name: fmt.Sprintf("pass%d", pass), MinRadius: minR}

	for set.Len() > 0 {
		if p.MaxIterations > 0 && stats.Iterations >= p.MaxIterations {
			stats.Truncated = true
			log.Printf("%s: stopping after %d iterations, %d pixels unvisited\n", stats.Name, stats.Iterations, set.Len())
			break
		}

		seed, ok := p.Seeder.Next(set)
		if !ok {
			break
		}
		stats.Iterations++

		c := GrowCircle(set, seed.X, seed.Y, p.MaxRadius)
		accepted := c.R >= minR
		if p.Observer != nil {
			p.Observer(PassEvent{Pass: pass, MinRadius: minR, Seed: seed, Circle: c, Accepted: accepted, Set: set})
		}

		if !accepted {
			set.Remove(seed)
			stats.Rejected++
			continue
		}

		circles = append(circles, c)
		stats.Accepted++
		set.RemoveDisc(c.X, c.Y, overlap.RemovalRadius(c.R, p.MinRadius, p.MaxRadius))

		if p.Verbosity > 1 {
			log.Printf(" -- %s: %s, %d pixels left\n", stats.Name, c, set.Len())
		}
	}

	stats.Remaining = set.Len()
	if p.Verbosity > 0 {
		log.Printf("%s\n", stats)
	}
	return circles, stats
}
