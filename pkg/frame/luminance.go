package frame

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/abworrall/mkbubble/pkg/bubble"
)

// A LumaFunc maps a color to a brightness in [0,1].
type LumaFunc func(c color.Color) float64

var (
	LumaModels = []string{"rec601", "cielab"}
)

func ListLumaModels() string {
	return fmt.Sprintf("%v", LumaModels)
}

func GetLumaFunc(name string) (LumaFunc, error) {
	switch name {
	case "rec601":
		return Luma, nil
	case "cielab":
		return Lightness, nil
	default:
		return nil, fmt.Errorf("no luma model named '%s', wanted %s", name, ListLumaModels())
	}
}

// Luma is the Rec.601 weighted sum of the (gamma encoded) channels.
// Alpha is ignored; channels are un-premultiplied first, so a
// translucent white pixel still counts as white.
func Luma(c color.Color) float64 {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	r, g, b := float64(n.R)/0xFFFF, float64(n.G)/0xFFFF, float64(n.B)/0xFFFF
	return 0.299*r + 0.587*g + 0.114*b
}

// Lightness is CIE L*, scaled to [0,1].
func Lightness(c color.Color) float64 {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	n.A = 0xFFFF
	col, _ := colorful.MakeColor(n)
	l, _, _ := col.Lab()
	if l < 0 {
		return 0
	} else if l > 1 {
		return 1
	}
	return l
}

func IsForeground(c color.Color, luma LumaFunc, threshold float64) bool {
	return luma(c) > threshold
}

type extractJob struct {
	Y    int
	Hits []int // x offsets of the foreground pixels in the row
}

// ExtractForeground thresholds every pixel of img, spreading rows over
// a pool of goroutines. Coordinates are relative to img.Bounds().Min.
// The set is filled in row-major order whatever the worker count, so
// the result is the same as a serial scan.
func ExtractForeground(img image.Image, luma LumaFunc, threshold float64, nWorkers int) *bubble.PixelSet {
	b := img.Bounds()
	h := b.Dy()
	if nWorkers < 1 {
		nWorkers = 1
	}

	var wg sync.WaitGroup
	jobsChan := make(chan extractJob, h)
	resultsChan := make(chan extractJob, h)

	for i := 0; i < nWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobsChan {
				for x := b.Min.X; x < b.Max.X; x++ {
					if IsForeground(img.At(x, b.Min.Y+job.Y), luma, threshold) {
						job.Hits = append(job.Hits, x-b.Min.X)
					}
				}
				resultsChan <- job
			}
		}()
	}

	for y := 0; y < h; y++ {
		jobsChan <- extractJob{Y: y}
	}
	close(jobsChan)
	wg.Wait()
	close(resultsChan)

	rows := make([][]int, h)
	for result := range resultsChan {
		rows[result.Y] = result.Hits
	}

	set := bubble.NewPixelSet()
	for y, hits := range rows {
		for _, x := range hits {
			set.Add(image.Point{x, y})
		}
	}
	return set
}
