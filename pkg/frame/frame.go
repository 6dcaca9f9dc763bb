package frame

import (
	"fmt"
	"image"
	"log"
	"path/filepath"

	"github.com/disintegration/gift"

	"github.com/abworrall/mkbubble/pkg/bubble"
)

// A Frame is one image being turned into bubbles: the decoded image,
// the foreground pixels picked out of it, and the circles that cover
// them.
type Frame struct {
	LoadFilename string
	Format       string
	Metadata

	Image image.Image
	Config

	Targets *bubble.PixelSet // the foreground; never modified once extracted
	Result  bubble.Result
}

func NewFrame(img image.Image, cfg Config) *Frame {
	return &Frame{
		Image:   img,
		Config:  cfg,
		Targets: bubble.NewPixelSet(),
	}
}

func (f *Frame) Width() int  { return f.Image.Bounds().Dx() }
func (f *Frame) Height() int { return f.Image.Bounds().Dy() }

func (f *Frame) Filename() string {
	if f.LoadFilename == "" {
		return "<memory>"
	}
	return filepath.Base(f.LoadFilename)
}

func (f *Frame) String() string {
	return fmt.Sprintf("Frame[%s %s %dx%d, %d targets, %d circles, %s]",
		f.Filename(), f.Format, f.Width(), f.Height(), f.Targets.Len(), len(f.Result.Circles), f.Metadata)
}

// Run does the whole job: finalize the config, extract the foreground,
// and pack it.
func (f *Frame) Run() error {
	if err := f.Config.Finalize(); err != nil {
		return err
	}
	if err := f.ExtractTargets(); err != nil {
		return err
	}
	return f.Pack()
}

// ExtractTargets fills in the foreground set, optionally blurring the
// image first to knock out speckle.
func (f *Frame) ExtractTargets() error {
	luma, err := GetLumaFunc(f.LumaModel)
	if err != nil {
		return err
	}

	img := f.Image
	if f.BlurSigma > 0 {
		g := gift.New(gift.GaussianBlur(float32(f.BlurSigma)))
		dst := image.NewNRGBA(g.Bounds(img.Bounds()))
		g.Draw(dst, img)
		img = dst
	}

	f.Targets = ExtractForeground(img, luma, f.LumaThreshold, f.Workers)
	if f.Verbosity > 0 {
		log.Printf("%s: %d of %d pixels are targets\n", f.Filename(), f.Targets.Len(), f.Width()*f.Height())
	}
	return nil
}

func (f *Frame) Pack() error {
	packer, err := bubble.NewPacker(f.Config.Config, f.Width(), f.Height())
	if err != nil {
		return err
	}

	f.Result = packer.Pack(f.Targets)
	if f.Verbosity > 0 {
		log.Printf("%s: %s\n", f.Filename(), bubble.NewRadiusStats(f.Result.Circles, f.MaxRadius))
	}
	return nil
}

// Output is the result line, with y counting up from the bottom.
func (f *Frame) Output() string {
	return bubble.FormatCircles(f.Result.Circles, f.Height())
}
