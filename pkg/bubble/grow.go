package bubble

// GrowCircle finds the biggest disc centred on (cx,cy) that fits inside
// the set. A radius of 1 is taken as given; from 2 upwards each radius
// is checked in turn, and growth stops at the first that doesn't fit,
// or at maxR. The result may be below any acceptance threshold; it is
// up to the caller to reject it.
func GrowCircle(set *PixelSet, cx, cy, maxR int) Circle {
	r := 1
	for next := 2; next <= maxR; next++ {
		if !DiscEntirelyValid(set, cx, cy, next) {
			break
		}
		r = next
	}
	return Circle{X: cx, Y: cy, R: r}
}
