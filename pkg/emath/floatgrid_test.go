package emath

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mdouchement/hdr/hdrcolor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatGrid(t *testing.T) {
	t.Parallel()

	fg := NewFloatGrid(4, 3)
	assert.Equal(t, 4, fg.Dx())
	assert.Equal(t, 3, fg.Dy())
	assert.Equal(t, image.Rect(0, 0, 4, 3), fg.Bounds())
	assert.Equal(t, 12, fg.Size())

	fg.Set(1, 2, 7)
	fg.Set(3, 0, 7)
	p, v := fg.ArgMax()
	assert.Equal(t, image.Point{3, 0}, p, "ties go to the first in row-major order")
	assert.Equal(t, 7.0, v)

	assert.Equal(t, hdrcolor.RGB{R: 7, G: 7, B: 7}, fg.HDRAt(1, 2))

	var empty FloatGrid
	_, v = empty.ArgMax()
	assert.Equal(t, -1.0, v)
	assert.Zero(t, empty.Dy())
}

func TestFloatGridToImg(t *testing.T) {
	t.Parallel()

	fg := ExactDistance(fullMask(20, 10), 20, 10)
	filename := filepath.Join(t.TempDir(), "grid.png")
	require.NoError(t, fg.ToImg("distance", filename))

	info, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, fg.ToImg("distance", filepath.Join(t.TempDir(), "nope", "grid.png")))
}

func TestFloatGridToHDR(t *testing.T) {
	t.Parallel()

	fg := ExactDistance(fullMask(8, 6), 8, 6)
	filename := filepath.Join(t.TempDir(), "grid.hdr")
	require.NoError(t, fg.ToHDR(filename))

	contents, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(contents), "#?"), "radiance header")
	assert.Greater(t, len(contents), 8*6)
}
