package bubble

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDiscPixels(t *testing.T) {
	t.Run("zero radius", func(t *testing.T) {
		assert.Equal(t, []image.Point{pt(4, 7)}, DiscPixels(4, 7, 0))
	})

	t.Run("negative radius", func(t *testing.T) {
		assert.Empty(t, DiscPixels(4, 7, -1))
	})

	t.Run("radius one", func(t *testing.T) {
		want := []image.Point{pt(5, 4), pt(4, 5), pt(5, 5), pt(6, 5), pt(5, 6)}
		if diff := cmp.Diff(want, DiscPixels(5, 5, 1)); diff != "" {
			t.Errorf("DiscPixels (-want +got):\n%s", diff)
		}
	})

	t.Run("counts", func(t *testing.T) {
		// Gauss circle problem: N(2)=13, N(3)=29, N(5)=81
		for r, n := range map[int]int{2: 13, 3: 29, 5: 81} {
			assert.Len(t, DiscPixels(50, 50, r), n, "r=%d", r)
		}
	})

	t.Run("no negative coordinates", func(t *testing.T) {
		pixels := DiscPixels(1, 0, 4)
		assert.NotEmpty(t, pixels)
		for _, p := range pixels {
			assert.True(t, p.X >= 0 && p.Y >= 0, "%v", p)
		}
		// Not clamped at the far end though
		assert.Contains(t, pixels, pt(5, 0))
	})
}

func TestDiscEntirelyValid(t *testing.T) {
	s := blockSet(0, 0, 5, 5)

	assert.True(t, DiscEntirelyValid(s, 2, 2, 2))
	assert.False(t, DiscEntirelyValid(s, 2, 2, 3), "(5,2) is off the right edge")
	assert.True(t, DiscEntirelyValid(s, 0, 0, 4), "negative side is never tested")
	assert.False(t, DiscEntirelyValid(s, 0, 0, 5))
	assert.True(t, DiscEntirelyValid(s, 9, 9, -1))

	s.Remove(pt(3, 2))
	assert.True(t, DiscEntirelyValid(s, 1, 2, 1))
	assert.False(t, DiscEntirelyValid(s, 2, 2, 1))
	assert.False(t, DiscEntirelyValid(s, 3, 2, 0))
}

func TestCoverage(t *testing.T) {
	circles := []Circle{{X: 5, Y: 5, R: 1}, {X: 6, Y: 5, R: 1}}
	cov := Coverage(circles)
	assert.Equal(t, 8, cov.Len()) // two plus-shapes sharing (5,5) and (6,5)
	assert.Equal(t, "[5,5,1]", circles[0].String())
	assert.Equal(t, pt(6, 5), circles[1].Center())
}
