package bubble

import "image"

// DiscPixels returns every integer coordinate within distance r of
// (cx,cy), row by row over the bounding box. Coordinates with a
// negative component are dropped; nothing is clamped at the far edges,
// callers rely on the pixel set not holding anything out there.
func DiscPixels(cx, cy, r int) []image.Point {
	if r < 0 {
		return nil
	}

	pixels := make([]image.Point, 0, (2*r+1)*(2*r+1))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < 0 || y < 0 {
				continue
			}
			pixels = append(pixels, image.Point{x, y})
		}
	}
	return pixels
}

// DiscEntirelyValid is true if every pixel DiscPixels would return is
// in the set. It walks the same box as DiscPixels without allocating,
// and gives up at the first miss; this is where packing spends its time.
func DiscEntirelyValid(set *PixelSet, cx, cy, r int) bool {
	if r < 0 {
		return true
	}

	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < 0 || y < 0 {
				continue
			}
			if !set.Contains(image.Point{x, y}) {
				return false
			}
		}
	}
	return true
}
