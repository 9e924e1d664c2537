// Package config loads the rgbetool settings file.
package config

import (
	"fmt"
	"io/ioutil"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

/* Example config file ...

workers: 4
exposure: 1.8
tonemapper: filmic
width: 1024
verbose: true

*/

// Tonemappers lists the accepted tone mapping operators. filmic is the
// per-channel curve of the radiance package, the others come from
// github.com/mdouchement/hdr/tmo.
var Tonemappers = []string{"filmic", "drago03", "linear", "reinhard05"}

type Configuration struct {
	Workers    int     `yaml:"workers"`    // Goroutines used per image.
	Exposure   float64 `yaml:"exposure"`   // Multiplier applied before the filmic curve.
	Tonemapper string  `yaml:"tonemapper"` // One of Tonemappers.
	Width      int     `yaml:"width"`      // Output width in pixels, 0 keeps the source width.
	Verbose    bool    `yaml:"verbose"`
}

func New() Configuration {
	return Configuration{
		Workers:    runtime.NumCPU(),
		Exposure:   1,
		Tonemapper: "filmic",
	}
}

// Load reads filename on top of the defaults.
func Load(filename string) (Configuration, error) {
	c := New()

	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		return c, errors.Wrapf(err, "read %q", filename)
	}
	if err := yaml.Unmarshal(contents, &c); err != nil {
		return c, errors.Wrapf(err, "parse %q", filename)
	}

	return c, c.Finalize()
}

// Finalize does sanity checks and fills in unset values.
func (c *Configuration) Finalize() error {
	if c.Workers < 1 {
		c.Workers = runtime.NumCPU()
	}
	if c.Tonemapper == "" {
		c.Tonemapper = "filmic"
	}
	if !(c.Exposure > 0) {
		return errors.Errorf("exposure must be positive, got %v", c.Exposure)
	}
	if c.Width < 0 {
		return errors.Errorf("width must not be negative, got %d", c.Width)
	}

	for _, name := range Tonemappers {
		if name == c.Tonemapper {
			return nil
		}
	}
	return errors.Errorf("no tonemapper named %q, wanted one of %v", c.Tonemapper, Tonemappers)
}

func (c Configuration) AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("# %v\n", err)
	}
	return string(b)
}
