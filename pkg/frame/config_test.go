package frame

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abworrall/mkbubble/pkg/bubble"
)

func TestConfigYaml(t *testing.T) {
	c := NewConfig()
	c.MaxRadius = 17
	c.Passes = 2
	c.Overlap = bubble.Overlap{Mode: "ratio", RatioAtMin: 0.5, RatioAtMax: 0.9}
	c.ChartFilename = "out.html"

	str := c.AsYaml()
	assert.Contains(t, str, "maxradius: 17")
	assert.Contains(t, str, "lumathreshold: 0.5")

	c2, err := NewConfigFromYaml([]byte(str))
	require.NoError(t, err)
	if diff := cmp.Diff(c, c2); diff != "" {
		t.Errorf("yaml round trip (-want +got):\n%s", diff)
	}
}

func TestLoadConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "mkbubble.yaml")
	yml := "minradius: 2\nseeder: first\noverlap:\n  mode: subtract\n  pixels: 1\n"
	require.NoError(t, os.WriteFile(filename, []byte(yml), 0644))

	c, err := LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, 25, c.MaxRadius, "unset values keep their defaults")
	assert.Equal(t, 2, c.MinRadius)
	assert.Equal(t, "first", c.Seeder)
	assert.Equal(t, 1, c.Overlap.Pixels)
	assert.Equal(t, "rec601", c.LumaModel)
	require.NoError(t, c.Finalize())
	assert.Positive(t, c.Workers)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("maxradius: [1,2"), 0644))
	_, err = LoadConfig(bad)
	assert.ErrorContains(t, err, "bad.yaml")
}

func TestConfigFinalizeErrors(t *testing.T) {
	tests := map[string]func(*Config){
		"luma model":    func(c *Config) { c.LumaModel = "hsv" },
		"lumathreshold": func(c *Config) { c.LumaThreshold = 2 },
		"blursigma":     func(c *Config) { c.BlurSigma = -1 },
		"minradius":     func(c *Config) { c.MinRadius = 0 },
	}
	for want, mutate := range tests {
		t.Run(want, func(t *testing.T) {
			c := NewConfig()
			mutate(&c)
			assert.ErrorContains(t, c.Finalize(), want)
		})
	}
}
