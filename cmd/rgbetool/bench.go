package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/codahale/hdrhistogram"
	"github.com/pkg/errors"
	radiance "github.com/siddhutedla/HDR-Video"
)

func runBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	inPath := fs.String("in", "", "input Radiance HDR file")
	n := fs.Int("n", 20, "number of decodes")
	workers := fs.Int("workers", 0, "goroutines per image, 0 uses every CPU")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 1 {
		return errors.New("-n must be positive")
	}

	data, err := readFile(*inPath)
	if err != nil {
		return err
	}

	// Microseconds, up to a minute.
	decodes := hdrhistogram.New(1, int64(time.Minute/time.Microsecond), 3)
	tonemaps := hdrhistogram.New(1, int64(time.Minute/time.Microsecond), 3)
	opts := func(o *radiance.Options) {
		if *workers > 0 {
			o.Workers = *workers
		}
	}

	for i := 0; i < *n; i++ {
		start := time.Now()
		m, err := radiance.Decode(data, opts)
		if err != nil {
			return err
		}
		if err = decodes.RecordValue(micros(start)); err != nil {
			return err
		}

		start = time.Now()
		radiance.ToneMap(m, opts)
		if err = tonemaps.RecordValue(micros(start)); err != nil {
			return err
		}
	}

	report("decode", decodes)
	report("tonemap", tonemaps)
	return nil
}

func report(name string, h *hdrhistogram.Histogram) {
	fmt.Printf("%-8s n=%d mean=%.0fus p50=%dus p90=%dus p99=%dus max=%dus\n",
		name, h.TotalCount(), h.Mean(), h.ValueAtQuantile(50), h.ValueAtQuantile(90), h.ValueAtQuantile(99), h.Max())
}

func micros(start time.Time) int64 {
	if us := time.Since(start).Microseconds(); us > 0 {
		return us
	}
	return 1
}
