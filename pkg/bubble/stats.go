package bubble

import (
	"fmt"

	"github.com/codahale/hdrhistogram"
)

// RadiusStats summarises the size distribution of a packing.
type RadiusStats struct {
	N        int64
	Min, Max int64
	Mean     float64
	P50, P90 int64
	Coverage int // pixels covered by the union of the circles
}

func (rs RadiusStats) String() string {
	if rs.N == 0 {
		return "Radii[none]"
	}
	return fmt.Sprintf("Radii[n=%d, min=%d, p50=%d, p90=%d, max=%d, mean=%.2f, covers %d px]",
		rs.N, rs.Min, rs.P50, rs.P90, rs.Max, rs.Mean, rs.Coverage)
}

// NewRadiusStats builds the summary; maxR bounds the histogram.
func NewRadiusStats(circles []Circle, maxR int) RadiusStats {
	if len(circles) == 0 {
		return RadiusStats{}
	}
	if maxR < 1 {
		maxR = 1
	}

	h := hdrhistogram.New(1, int64(maxR), 3)
	for _, c := range circles {
		if err := h.RecordValue(int64(c.R)); err != nil {
			// Only happens for radii outside [1, maxR].
			h.RecordValue(int64(maxR))
		}
	}

	return RadiusStats{
		N:        h.TotalCount(),
		Min:      h.Min(),
		Max:      h.Max(),
		Mean:     h.Mean(),
		P50:      h.ValueAtQuantile(50),
		P90:      h.ValueAtQuantile(90),
		Coverage: Coverage(circles).Len(),
	}
}
