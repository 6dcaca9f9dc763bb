//go:build gocv

package emath

// An OpenCV backed distance kernel. It needs OpenCV 4 and its dev
// headers installed, so it is only built with `-tags gocv`.

import (
	"gocv.io/x/gocv"
)

func init() {
	Kernels["opencv"] = OpenCVDistance
}

// OpenCVDistance runs cv::distanceTransform over the mask. The mask is
// padded by a one pixel border of non-members, so the image edge stops
// distances the same way the pure Go kernels do.
func OpenCVDistance(mask []bool, w, h int) FloatGrid {
	out := NewFloatGrid(w, h)
	if w <= 0 || h <= 0 {
		return out
	}

	src := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), h+2, w+2, gocv.MatTypeCV8U)
	defer src.Close()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask[y*w+x] {
				src.SetUCharAt(y+1, x+1, 255)
			}
		}
	}

	dist := gocv.NewMat()
	defer dist.Close()
	labels := gocv.NewMat()
	defer labels.Close()
	gocv.DistanceTransform(src, &dist, &labels, gocv.DistL2, gocv.DistanceMask5, gocv.DistanceLabelCComp)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask[y*w+x] {
				out.Set(x, y, float64(dist.GetFloatAt(y+1, x+1)))
			}
		}
	}

	return out
}
