// Command smooth applies the box-blur smoothing filter to image files.
//
// Usage:
//
//	smooth [flags] input.png [input2.jpg ...]
//
// Each input is decoded, optionally desaturated, blurred with a 3×3 or 5×5
// neighborhood and written to the output directory as
// <name>_smoothed.<format>. With -probe, the RGBA value of one pixel of the
// original image is printed as well.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/smooth"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "smooth: %v\n", err)
		os.Exit(1)
	}
}

// run parses args and processes every input file.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	smooth.SetLogger(logger)
	defer smooth.SetLogger(nil)

	if err := os.MkdirAll(opts.outDir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	engine := smooth.NewEngine(
		smooth.WithWorkers(opts.workers),
		smooth.WithBandHeight(opts.bandHeight),
	)
	defer engine.Close()

	b := &batch{
		engine: engine,
		opts:   opts,
		out:    newReporter(stdout),
		log:    logger,
	}
	return b.run(ctx)
}
