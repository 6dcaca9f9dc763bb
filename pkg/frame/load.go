package frame

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// A DecodeError means the input could not be turned into an image:
// missing or unreadable file, or data in no format we know.
type DecodeError struct {
	Filename string
	Err      error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode '%s': %v", e.Filename, e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// Metadata is what we pick out of the EXIF block, if there is one.
type Metadata struct {
	Camera      string
	Taken       time.Time
	Orientation int
}

func (m Metadata) String() string {
	if m.Camera == "" && m.Taken.IsZero() {
		return "no exif"
	}
	return fmt.Sprintf("%s @ %s, orientation %d", m.Camera, m.Taken.Format(time.RFC3339), m.Orientation)
}

// LoadImage decodes any format registered with the image package: png,
// jpeg and gif from the standard library, bmp, tiff and webp from
// x/image.
func LoadImage(filename string) (image.Image, string, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return nil, "", &DecodeError{Filename: filename, Err: err}
	}
	defer reader.Close()

	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, "", &DecodeError{Filename: filename, Err: err}
	}
	return img, format, nil
}

// LoadMetadata reads EXIF data. Most inputs (PNG frames in particular)
// won't have any, so a failure just leaves fields empty.
func LoadMetadata(filename string) (Metadata, error) {
	m := Metadata{}

	reader, err := os.Open(filename)
	if err != nil {
		return m, fmt.Errorf("open+r exif '%s': %w", filename, err)
	}
	defer reader.Close()

	ex, err := exif.Decode(reader)
	if err != nil {
		return m, fmt.Errorf("exif parsing '%s': %w", filename, err)
	}

	if tag, err := ex.Get(exif.Model); err == nil {
		if val, err := tag.StringVal(); err == nil {
			m.Camera = val
		}
	}
	if tag, err := ex.Get(exif.Orientation); err == nil {
		if val, err := tag.Int(0); err == nil {
			m.Orientation = val
		}
	}
	if t, err := ex.DateTime(); err == nil {
		m.Taken = t
	}

	return m, nil
}

// Load reads an image file into a new Frame.
func Load(filename string, cfg Config) (*Frame, error) {
	img, format, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}

	f := NewFrame(img, cfg)
	f.LoadFilename = filename
	f.Format = format

	if md, err := LoadMetadata(filename); err != nil {
		if cfg.Verbosity > 1 {
			log.Printf("%s: %v\n", f.Filename(), err)
		}
	} else {
		f.Metadata = md
	}

	return f, nil
}
