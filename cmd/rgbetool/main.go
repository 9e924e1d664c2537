package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	radiance "github.com/siddhutedla/HDR-Video"
	"github.com/siddhutedla/HDR-Video/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "png":
		err = runPNG(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	case "probe":
		err = runProbe(os.Args[2:])
	case "bench":
		err = runBench(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fail(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: rgbetool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  png   -in input.hdr -out output.png [-exposure 1.0] [-tmo filmic] [-w 0] [-config rgbetool.yaml] [-v]")
	fmt.Fprintln(os.Stderr, "  info  -in input.hdr")
	fmt.Fprintln(os.Stderr, "  probe -in input.hdr -x 0 -y 0 [-exposure 1.0]")
	fmt.Fprintln(os.Stderr, "  bench -in input.hdr [-n 20]")
	fmt.Fprintf(os.Stderr, "Tone mapping operators: %v (exposure only applies to filmic)\n", config.Tonemappers)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

// settings holds the flags shared by the commands that tone map.
type settings struct {
	configPath *string
	exposure   *float64
	tonemapper *string
	width      *int
	workers    *int
	verbose    *bool
}

func addSettings(fs *flag.FlagSet) settings {
	return settings{
		configPath: fs.String("config", "", "YAML settings file"),
		exposure:   fs.Float64("exposure", 1, "linear multiplier applied before the filmic curve"),
		tonemapper: fs.String("tmo", "filmic", "tone mapping operator"),
		width:      fs.Int("w", 0, "output width, 0 keeps the source width"),
		workers:    fs.Int("workers", 0, "goroutines per image, 0 uses every CPU"),
		verbose:    fs.Bool("v", false, "log stage timings"),
	}
}

// configuration loads the settings file then applies the flags that were
// set explicitly on the command line.
func (s settings) configuration(fs *flag.FlagSet) (config.Configuration, error) {
	c := config.New()
	if *s.configPath != "" {
		var err error
		if c, err = config.Load(*s.configPath); err != nil {
			return c, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "exposure":
			c.Exposure = *s.exposure
		case "tmo":
			c.Tonemapper = *s.tonemapper
		case "w":
			c.Width = *s.width
		case "workers":
			c.Workers = *s.workers
		case "v":
			c.Verbose = *s.verbose
		}
	})

	if err := c.Finalize(); err != nil {
		return c, err
	}
	if c.Verbose {
		log.Printf("Final configuration:-\n\n%s\n", c.AsYaml())
	}
	return c, nil
}

func options(c config.Configuration) func(*radiance.Options) {
	return func(o *radiance.Options) {
		o.Workers = c.Workers
		o.Exposure = float32(c.Exposure)
		if c.Verbose {
			o.Trace = func(stage string, elapsed time.Duration) {
				log.Printf("%s: %v", stage, elapsed)
			}
		}
	}
}

func readFile(filename string) ([]byte, error) {
	if filename == "" {
		return nil, errors.New("missing -in")
	}
	data, err := ioutil.ReadFile(filename)
	return data, errors.Wrap(err, "could not read image")
}
