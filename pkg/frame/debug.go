package frame

// Debug output: none of this affects the result line, so failures are
// collected and handed back for the caller to log.

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/abworrall/mkbubble/pkg/bubble"
	"github.com/abworrall/mkbubble/pkg/emath"
)

func WritePNG(img image.Image, filename string) error {
	writer, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("open+w '%s': %w", filename, err)
	}
	defer writer.Close()

	if err := png.Encode(writer, img); err != nil {
		return fmt.Errorf("png encode '%s': %w", filename, err)
	}
	return nil
}

// MaskImage draws the set white on black. Members outside w*h are
// skipped.
func MaskImage(set *bubble.PixelSet, w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for _, p := range set.Points() {
		if p.X < w && p.Y < h {
			img.SetGray(p.X, p.Y, color.Gray{0xFF})
		}
	}
	return img
}

func WriteMaskPNG(set *bubble.PixelSet, w, h int, filename string) error {
	return WritePNG(MaskImage(set, w, h), filename)
}

func (f *Frame) debugPath(name string) string { return filepath.Join(f.DebugDir, name) }

// WriteDebugImages writes everything there is to look at:
//
//	targets.png      the foreground
//	first_pass.png   area covered by the first pass circles
//	output.png       area covered by all the circles
//	overlay.png      the circles drawn over the input
//	distance.png     distance transform of the foreground (and .hdr, unscaled)
//	radii.png        histogram of circle radii
func (f *Frame) WriteDebugImages() error {
	w, h := f.Width(), f.Height()
	errs := []error{}
	try := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	firstPass := f.Result.FirstPass
	if f.Passes < 2 {
		firstPass = f.Result.Circles
	}

	try(WriteMaskPNG(f.Targets, w, h, f.debugPath("targets.png")))
	try(WriteMaskPNG(bubble.Coverage(firstPass), w, h, f.debugPath("first_pass.png")))
	try(WriteMaskPNG(bubble.Coverage(f.Result.Circles), w, h, f.debugPath("output.png")))
	try(f.WriteOverlay(f.debugPath("overlay.png")))
	try(f.WriteDistance(f.debugPath("distance.png"), f.debugPath("distance.hdr")))
	if len(f.Result.Circles) > 0 {
		try(f.WriteRadiusHistogram(f.debugPath("radii.png")))
	}

	return errors.Join(errs...)
}

// WriteOverlay draws the circles over the input image; pass one in
// red, the rest in green.
func (f *Frame) WriteOverlay(filename string) error {
	dc := gg.NewContextForImage(f.Image)
	dc.SetLineWidth(1)

	nFirst := len(f.Result.FirstPass)
	for i, c := range f.Result.Circles {
		if i < nFirst {
			dc.SetRGBA(1, 0.2, 0.2, 0.9)
		} else {
			dc.SetRGBA(0.2, 1, 0.2, 0.9)
		}
		dc.DrawCircle(float64(c.X)+0.5, float64(c.Y)+0.5, float64(c.R))
		dc.Stroke()
	}

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("overlay '%s': %w", filename, err)
	}
	return nil
}

func (f *Frame) WriteDistance(pngFilename, hdrFilename string) error {
	kernel, err := emath.GetKernel(f.Kernel)
	if err != nil {
		return err
	}

	w, h := f.Width(), f.Height()
	grid := kernel(f.Targets.Mask(w, h), w, h)
	_, peak := grid.ArgMax()
	if f.Verbosity > 0 {
		log.Printf("%s: distance %s\n", f.Filename(), grid.Stats())
	}

	if err := grid.ToImg(fmt.Sprintf("%s EDT, max %.1f", f.Kernel, peak), pngFilename); err != nil {
		return err
	}
	return grid.ToHDR(hdrFilename)
}

// WriteRadiusHistogram plots how many circles there are of each radius,
// from 0 to MaxRadius.
func (f *Frame) WriteRadiusHistogram(filename string) error {
	maxR := f.MaxRadius
	for _, c := range f.Result.Circles {
		if c.R > maxR {
			maxR = c.R
		}
	}
	counts := make(plotter.Values, maxR+1)
	for _, c := range f.Result.Circles {
		counts[c.R]++
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: %d circles", f.Filename(), len(f.Result.Circles))
	p.X.Label.Text = "radius (px)"
	p.Y.Label.Text = "circles"

	bars, err := plotter.NewBarChart(counts, vg.Points(6))
	if err != nil {
		return fmt.Errorf("radius histogram: %w", err)
	}
	p.Add(bars)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("save '%s': %w", filename, err)
	}
	return nil
}
