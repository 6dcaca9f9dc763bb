package bubble

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abworrall/mkbubble/pkg/emath"
)

func TestSeedersOnEmptySet(t *testing.T) {
	seeders := map[string]Seeder{
		"first":  FirstSeeder{},
		"random": NewRandomSeeder(1),
		"edt":    EDTSeeder{Width: 4, Height: 4, Kernel: emath.ExactDistance},
	}
	for name, s := range seeders {
		_, ok := s.Next(NewPixelSet())
		assert.False(t, ok, name)
	}
}

func TestFirstSeeder(t *testing.T) {
	s := NewPixelSetFromPoints([]image.Point{pt(3, 1), pt(0, 0)})
	p, ok := FirstSeeder{}.Next(s)
	require.True(t, ok)
	assert.Equal(t, pt(3, 1), p)
	assert.Equal(t, 2, s.Len())
}

func TestRandomSeeder(t *testing.T) {
	s := blockSet(0, 0, 10, 10)

	draw := func(seed int64) []image.Point {
		rs := NewRandomSeeder(seed)
		pts := []image.Point{}
		for i := 0; i < 20; i++ {
			p, ok := rs.Next(s)
			require.True(t, ok)
			require.True(t, s.Contains(p))
			pts = append(pts, p)
		}
		return pts
	}

	assert.Equal(t, draw(7), draw(7))
	assert.NotEqual(t, draw(7), draw(8))
}

func TestEDTSeeder(t *testing.T) {
	// A 3x3 block and a 7x7 block; the middle of the 7x7 is farthest
	// from the background.
	s := blockSet(1, 1, 3, 3)
	for y := 2; y < 9; y++ {
		for x := 15; x < 22; x++ {
			s.Add(pt(x, y))
		}
	}

	seeder := EDTSeeder{Width: 30, Height: 12, Kernel: emath.ExactDistance}
	p, ok := seeder.Next(s)
	require.True(t, ok)
	assert.Equal(t, pt(18, 5), p)

	t.Run("out of bounds members", func(t *testing.T) {
		far := NewPixelSetFromPoints([]image.Point{pt(40, 40)})
		p, ok := seeder.Next(far)
		require.True(t, ok)
		assert.Equal(t, pt(40, 40), p)
	})
}

func TestNewSeeder(t *testing.T) {
	cfg := NewConfig()
	for _, name := range Seeders {
		s, err := NewSeeder(name, 10, 10, cfg)
		require.NoError(t, err, name)
		assert.NotNil(t, s)
	}

	_, err := NewSeeder("nope", 10, 10, cfg)
	assert.ErrorContains(t, err, "no Seeder strategy named 'nope'")

	cfg.Kernel = "nope"
	_, err = NewSeeder("edt", 10, 10, cfg)
	assert.Error(t, err)
}
