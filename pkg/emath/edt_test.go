package emath

import (
	"image"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullMask(w, h int) []bool {
	mask := make([]bool, w*h)
	for i := range mask {
		mask[i] = true
	}
	return mask
}

func TestExactDistance(t *testing.T) {
	t.Parallel()

	t.Run("empty mask is all zero", func(t *testing.T) {
		t.Parallel()
		grid := ExactDistance(make([]bool, 12), 4, 3)
		for _, v := range grid.Values() {
			assert.Zero(t, v)
		}
	})

	t.Run("full 5x5 peaks in the middle", func(t *testing.T) {
		t.Parallel()
		grid := ExactDistance(fullMask(5, 5), 5, 5)
		p, d := grid.ArgMax()
		assert.Equal(t, image.Point{2, 2}, p)
		assert.Equal(t, 3.0, d)
		assert.Equal(t, 1.0, grid.Get(0, 0))
		assert.Equal(t, 1.0, grid.Get(4, 2))
	})

	t.Run("single hole", func(t *testing.T) {
		t.Parallel()
		mask := fullMask(9, 9)
		mask[4*9+4] = false
		grid := ExactDistance(mask, 9, 9)
		assert.Zero(t, grid.Get(4, 4))
		assert.Equal(t, 1.0, grid.Get(5, 4))
		assert.InDelta(t, math.Sqrt2, grid.Get(5, 5), 1e-12)
	})

	t.Run("matches brute force on random masks", func(t *testing.T) {
		t.Parallel()
		rng := rand.New(rand.NewSource(42))
		for trial := 0; trial < 20; trial++ {
			w, h := 1+rng.Intn(17), 1+rng.Intn(13)
			mask := make([]bool, w*h)
			for i := range mask {
				mask[i] = rng.Float64() < 0.8
			}
			exact := ExactDistance(mask, w, h)
			brute := BruteDistance(mask, w, h)
			require.Equal(t, brute.Values(), exact.Values(), "trial %d (%dx%d)", trial, w, h)
		}
	})
}

func TestFarthestPoint(t *testing.T) {
	t.Parallel()

	mask := make([]bool, 30*10)
	// A 3x3 block and a 7x7 block; the bigger one wins.
	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			mask[y*30+x] = true
		}
	}
	for y := 2; y < 9; y++ {
		for x := 15; x < 22; x++ {
			mask[y*30+x] = true
		}
	}

	p, d, ok := FarthestPoint(ExactDistance, mask, 30, 10)
	require.True(t, ok)
	assert.Equal(t, image.Point{18, 5}, p)
	assert.Equal(t, 4.0, d)

	_, _, ok = FarthestPoint(ExactDistance, make([]bool, 4), 2, 2)
	assert.False(t, ok)
}

func TestGetKernel(t *testing.T) {
	t.Parallel()

	k, err := GetKernel("exact")
	require.NoError(t, err)
	assert.NotNil(t, k)

	_, err = GetKernel("fft")
	assert.ErrorContains(t, err, "fft")
	assert.Contains(t, ListKernels(), "brute")
}
