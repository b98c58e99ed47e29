package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/smooth"
)

// errOutputCollision is returned when two inputs map to the same output file.
var errOutputCollision = errors.New("inputs write the same output file")

// options holds the parsed command line.
type options struct {
	cfg        smooth.FilterConfig
	workers    int
	bandHeight int
	jobs       int
	outDir     string
	format     string
	probe      *point
	verbose    bool
	inputs     []string
}

// point is an image-space pixel coordinate.
type point struct {
	X, Y int
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("smooth", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		kernel  = fs.Int("kernel", 3, "neighborhood size: 3 or 5")
		gray    = fs.Bool("gray", false, "convert to grayscale before smoothing")
		workers = fs.Int("workers", 1, "goroutines per image (0 = GOMAXPROCS)")
		band    = fs.Int("band", 0, "rows per work unit (0 = default)")
		jobs    = fs.Int("jobs", 2, "images processed concurrently")
		outDir  = fs.String("out", "smoothed", "output directory")
		format  = fs.String("format", "png", "output format: png, jpg, bmp or tiff")
		probe   = fs.String("probe", "", "print the pixel at x,y of each input (fractions are floored)")
		verbose = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := smooth.ConfigForKernelSize(*kernel, *gray)
	if err != nil {
		return nil, err
	}
	if !smooth.SupportedFormat(*format) {
		return nil, fmt.Errorf("%w: %q", smooth.ErrUnsupportedFormat, *format)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return nil, errors.New("no input files")
	}

	opts := &options{
		cfg:        cfg,
		workers:    *workers,
		bandHeight: *band,
		jobs:       max(*jobs, 1),
		outDir:     *outDir,
		format:     strings.ToLower(*format),
		verbose:    *verbose,
		inputs:     fs.Args(),
	}
	if err := checkOutputs(opts); err != nil {
		return nil, err
	}
	if *probe != "" {
		p, err := parsePoint(*probe)
		if err != nil {
			return nil, err
		}
		opts.probe = &p
	}
	return opts, nil
}

// checkOutputs rejects inputs whose output paths coincide, such as
// a/img.png and b/img.jpg, before any file is written.
func checkOutputs(opts *options) error {
	seen := make(map[string]string, len(opts.inputs))
	for _, in := range opts.inputs {
		out := outputPath(opts.outDir, in, opts.format)
		if prev, ok := seen[out]; ok {
			return fmt.Errorf("%w: %q and %q both write %q", errOutputCollision, prev, in, out)
		}
		seen[out] = in
	}
	return nil
}

// parsePoint parses "x,y" where x and y may be fractional cursor
// coordinates; they are floored onto the pixel grid.
func parsePoint(s string) (point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return point{}, fmt.Errorf("probe %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return point{}, fmt.Errorf("probe x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return point{}, fmt.Errorf("probe y: %w", err)
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return point{}, fmt.Errorf("probe %q: not a finite coordinate", s)
	}
	return point{X: int(math.Floor(x)), Y: int(math.Floor(y))}, nil
}
