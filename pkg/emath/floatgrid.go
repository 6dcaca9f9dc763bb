package emath

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"
	"gonum.org/v1/gonum/floats"
)

// A FloatGrid is a grid of floats, stored row by row. The distance
// kernels return one, and it implements hdr.Image so a grid can be
// dumped straight into an RGBE file for inspection.
type FloatGrid struct {
	stride int
	values []float64
}

func NewFloatGrid(w, h int) FloatGrid {
	return FloatGrid{
		stride: w,
		values: make([]float64, w*h),
	}
}

func (fg *FloatGrid) Set(x, y int, v float64) { fg.values[fg.stride*y+x] = v }
func (fg *FloatGrid) Get(x, y int) float64    { return fg.values[fg.stride*y+x] }
func (fg *FloatGrid) Dx() int                 { return fg.stride }
func (fg *FloatGrid) Values() []float64       { return fg.values }

func (fg *FloatGrid) Dy() int {
	if fg.stride == 0 {
		return 0
	}
	return len(fg.values) / fg.stride
}

// ArgMax returns the position of the largest value in the grid, and
// the value. Ties go to the first position in row-major order. An
// empty grid returns a zero point and -1.
func (fg *FloatGrid) ArgMax() (image.Point, float64) {
	if len(fg.values) == 0 {
		return image.Point{}, -1
	}
	i := floats.MaxIdx(fg.values)
	return image.Point{i % fg.stride, i / fg.stride}, fg.values[i]
}

func (fg *FloatGrid) Stats() string {
	if len(fg.values) == 0 {
		return "fg[0x0]"
	}
	return fmt.Sprintf("fg[%dx%d, vals{%f,%f}]", fg.Dx(), fg.Dy(), floats.Min(fg.values), floats.Max(fg.values))
}

// Implement image.Image, so the grid can be handed to encoders
func (fg FloatGrid) ColorModel() color.Model { return hdrcolor.RGBModel }
func (fg FloatGrid) Bounds() image.Rectangle { return image.Rect(0, 0, fg.Dx(), fg.Dy()) }
func (fg FloatGrid) At(x, y int) color.Color { return fg.HDRAt(x, y) }

// Implement hdr.Image; each value becomes a gray HDR pixel
func (fg FloatGrid) HDRAt(x, y int) hdrcolor.Color {
	v := fg.Get(x, y)
	return hdrcolor.RGB{R: v, G: v, B: v}
}
func (fg FloatGrid) Size() int { return len(fg.values) }

// ToImg saves a simple grayscale, based on the range of values in the grid, and gamma scaling the
// gray to look normal for human vision. The title is drawn in the top left corner.
func (fg *FloatGrid) ToImg(title, filename string) error {
	min, max := math.Inf(1), math.Inf(-1)
	if len(fg.values) > 0 {
		min, max = floats.Min(fg.values), floats.Max(fg.values)
	}
	span := max - min
	if span <= 0 {
		span = 1
	}

	img := image.NewRGBA64(fg.Bounds())
	for x := 0; x < fg.Dx(); x++ {
		for y := 0; y < fg.Dy(); y++ {
			gray := GammaExpand_F64((fg.Get(x, y) - min) / span)
			v := uint16(gray * 65535.0)
			img.Set(x, y, color.RGBA64{v, v, v, 0xFFFF})
		}
	}

	dc := gg.NewContextForImage(img)
	dc.SetRGB(1, 0.2, 0.2)
	dc.DrawString(title, 10, 20)
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save '%s': %w", filename, err)
	}
	return nil
}

// ToHDR writes the raw values out as an RGBE (Radiance) file, so they
// can be inspected without any normalisation.
func (fg FloatGrid) ToHDR(filename string) error {
	writer, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("open+w '%s': %w", filename, err)
	}
	defer writer.Close()

	if err := rgbe.Encode(writer, fg); err != nil {
		return fmt.Errorf("encoding RGBE '%s': %w", filename, err)
	}
	return nil
}
