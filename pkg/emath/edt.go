package emath

import (
	"fmt"
	"image"
	"math"
	"sort"
)

// A DistanceFunc computes a distance transform over a w*h mask, stored
// row by row (true = member). Each member gets the Euclidean distance to
// the nearest non-member; non-members get 0. Pixels outside the grid
// count as non-members, so a fully set mask still peaks in its middle.
type DistanceFunc func(mask []bool, w, h int) FloatGrid

// Kernels holds the available distance transforms, by name. Builds with
// the `gocv` tag add an OpenCV backed "opencv" kernel.
var Kernels = map[string]DistanceFunc{
	"exact": ExactDistance,
	"brute": BruteDistance,
}

func ListKernels() string {
	names := []string{}
	for name := range Kernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%v", names)
}

func GetKernel(name string) (DistanceFunc, error) {
	if k, exists := Kernels[name]; exists {
		return k, nil
	}
	return nil, fmt.Errorf("no distance kernel named '%s', wanted %s", name, ListKernels())
}

// FarthestPoint runs the kernel and returns the member that is farthest
// from any non-member (the centre of the largest inscribed disc), and
// its distance. The bool is false if the mask has no members.
func FarthestPoint(kernel DistanceFunc, mask []bool, w, h int) (image.Point, float64, bool) {
	if w <= 0 || h <= 0 {
		return image.Point{}, 0, false
	}
	grid := kernel(mask, w, h)
	p, d := grid.ArgMax()
	if d <= 0 {
		return image.Point{}, 0, false
	}
	return p, d, true
}

// ExactDistance is the separable exact Euclidean transform: a vertical
// scan per column, then the lower envelope of parabolas along each row
// (Felzenszwalb & Huttenlocher, "Distance Transforms of Sampled
// Functions"). Linear in the number of pixels.
func ExactDistance(mask []bool, w, h int) FloatGrid {
	out := NewFloatGrid(w, h)
	if w <= 0 || h <= 0 {
		return out
	}

	// Pass 1: squared distance to the nearest non-member in the same column.
	// The rows just above and below the grid are non-members.
	col := make([]float64, w*h)
	for x := 0; x < w; x++ {
		last := -1
		for y := 0; y < h; y++ {
			if !mask[y*w+x] {
				last = y
				col[y*w+x] = 0
				continue
			}
			col[y*w+x] = float64(y - last)
		}
		next := h
		for y := h - 1; y >= 0; y-- {
			if !mask[y*w+x] {
				next = y
				continue
			}
			d := col[y*w+x]
			if alt := float64(next - y); alt < d {
				d = alt
			}
			col[y*w+x] = d * d
		}
	}

	// Pass 2: along each row, padded with a non-member at either end.
	n := w + 2
	f := make([]float64, n)
	d := make([]float64, n)
	v := make([]int, n)
	z := make([]float64, n+1)
	for y := 0; y < h; y++ {
		f[0], f[n-1] = 0, 0
		for x := 0; x < w; x++ {
			f[x+1] = col[y*w+x]
		}
		lowerEnvelope(f, d, v, z)
		for x := 0; x < w; x++ {
			if mask[y*w+x] {
				out.Set(x, y, math.Sqrt(d[x+1]))
			}
		}
	}

	return out
}

// lowerEnvelope computes d[q] = min over p of (q-p)^2 + f[p]. v and z
// are scratch space, of len(f) and len(f)+1.
func lowerEnvelope(f, d []float64, v []int, z []float64) {
	n := len(f)
	intersect := func(q, p int) float64 {
		return ((f[q] + float64(q*q)) - (f[p] + float64(p*p))) / float64(2*q-2*p)
	}

	k := 0
	v[0] = 0
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)
	for q := 1; q < n; q++ {
		s := intersect(q, v[k])
		for s <= z[k] {
			k--
			s = intersect(q, v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dq := q - v[k]
		d[q] = float64(dq*dq) + f[v[k]]
	}
}

// BruteDistance checks every member against every non-member. It is
// quadratic, and only here as a reference for small masks.
func BruteDistance(mask []bool, w, h int) FloatGrid {
	out := NewFloatGrid(w, h)

	outside := []image.Point{}
	for i, in := range mask[:w*h] {
		if !in {
			outside = append(outside, image.Point{i % w, i / w})
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !mask[y*w+x] {
				continue
			}
			// Nearest pixel in the non-member ring around the grid
			best := float64(min(x+1, w-x, y+1, h-y))
			for _, p := range outside {
				dx, dy := float64(p.X-x), float64(p.Y-y)
				if dist := math.Sqrt(dx*dx + dy*dy); dist < best {
					best = dist
				}
			}
			out.Set(x, y, best)
		}
	}

	return out
}
