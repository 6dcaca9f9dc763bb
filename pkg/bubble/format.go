package bubble

import "strings"

// FormatCircles renders the circles as `[[x,y,r],...],` with y flipped
// to count up from the bottom of an image of the given height. The
// trailing comma is part of the format; output from several frames is
// concatenated into one array downstream.
func FormatCircles(circles []Circle, height int) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, c := range circles {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(Circle{X: c.X, Y: height - c.Y, R: c.R}.String())
	}
	sb.WriteString("],")
	return sb.String()
}
