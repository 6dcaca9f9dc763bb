package frame

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"gopkg.in/yaml.v2"

	"github.com/abworrall/mkbubble/pkg/bubble"
)

// Config is everything needed to turn an image file into circles. The
// packing parameters live in the embedded bubble.Config, and are
// flattened into the same YAML document.
type Config struct {
	bubble.Config `yaml:",inline"`

	LumaModel     string  // "rec601" or "cielab"
	LumaThreshold float64 // pixels brighter than this are foreground
	BlurSigma     float64 // gaussian blur before thresholding; 0 turns it off
	Workers       int     // for foreground extraction; 0 means one per CPU

	Debug         bool   // write the debug images
	DebugDir      string // where the debug images go
	ChartFilename string // if set, write an HTML chart of the circles here
}

func NewConfig() Config {
	return Config{
		Config:        bubble.NewConfig(),
		LumaModel:     "rec601",
		LumaThreshold: 0.5,
		DebugDir:      ".",
	}
}

func NewConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

func LoadConfig(filename string) (Config, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read '%s': %w", filename, err)
	}

	c, err := NewConfigFromYaml(contents)
	if err != nil {
		return Config{}, fmt.Errorf("config parse '%s': %w", filename, err)
	}
	return c, nil
}

func (c Config) AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}

// Finalize fills in derived values, and does sanity checks.
func (c *Config) Finalize() error {
	if err := c.Config.Finalize(); err != nil {
		return err
	}

	if c.LumaModel == "" {
		c.LumaModel = "rec601"
	}
	if _, err := GetLumaFunc(c.LumaModel); err != nil {
		return err
	}
	if c.LumaThreshold < 0 || c.LumaThreshold > 1 {
		return fmt.Errorf("lumathreshold must be in [0,1], got %g", c.LumaThreshold)
	}
	if c.BlurSigma < 0 {
		return fmt.Errorf("blursigma must be >= 0, got %g", c.BlurSigma)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.DebugDir == "" {
		c.DebugDir = "."
	}
	return nil
}
