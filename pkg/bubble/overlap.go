package bubble

import (
	"fmt"
	"math"

	"github.com/abworrall/mkbubble/pkg/emath"
)

// Overlap decides how much of an accepted circle is taken out of the
// pixel set. Removing a slightly smaller disc than the one accepted
// leaves a thin ring behind, so later circles can overlap this one a
// little and the packing gets denser.
//
//   - "subtract": remove a disc of radius r - Pixels
//   - "ratio":    remove a disc of radius r * k, where k slides linearly from
//     RatioAtMin (for a circle of MinRadius) to RatioAtMax (for MaxRadius)
type Overlap struct {
	Mode       string
	Pixels     int
	RatioAtMin float64
	RatioAtMax float64
}

func (o Overlap) String() string {
	switch o.Mode {
	case "ratio":
		return fmt.Sprintf("ratio[%.2f..%.2f]", o.RatioAtMin, o.RatioAtMax)
	default:
		return fmt.Sprintf("subtract[%d]", o.Pixels)
	}
}

func (o Overlap) Validate() error {
	switch o.Mode {
	case "", "subtract":
		if o.Pixels < 0 {
			return fmt.Errorf("overlap pixels must be >= 0, got %d", o.Pixels)
		}
	case "ratio":
		for _, k := range []float64{o.RatioAtMin, o.RatioAtMax} {
			if k < 0 || k > 1 {
				return fmt.Errorf("overlap ratio must be in [0,1], got %g", k)
			}
		}
	default:
		return fmt.Errorf("no overlap mode named '%s', wanted [subtract ratio]", o.Mode)
	}
	return nil
}

// RemovalRadius is the radius of the disc to take out of the pixel set,
// for an accepted circle of radius r. It is always in [0, r].
func (o Overlap) RemovalRadius(r, minR, maxR int) int {
	rr := r
	switch o.Mode {
	case "ratio":
		t := 1.0
		if maxR > minR {
			t = float64(r-minR) / float64(maxR-minR)
		}
		k := emath.Lerp(o.RatioAtMin, o.RatioAtMax, t)
		rr = int(math.Floor(float64(r) * k))
	default:
		rr = r - o.Pixels
	}

	if rr < 0 {
		return 0
	} else if rr > r {
		return r
	}
	return rr
}
