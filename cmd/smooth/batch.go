package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/smooth"
)

// batch processes a set of input files with a shared engine.
type batch struct {
	engine *smooth.Engine
	opts   *options
	out    *reporter
	log    *slog.Logger
}

// run processes all inputs, at most opts.jobs at a time.
// The first failure cancels the files that have not started yet.
func (b *batch) run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.jobs)

	for _, path := range b.opts.inputs {
		g.Go(func() error {
			return b.processFile(ctx, path)
		})
	}
	return g.Wait()
}

// processFile loads, smooths and saves one image.
func (b *batch) processFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()

	src, err := smooth.LoadImage(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if b.opts.probe != nil {
		p := *b.opts.probe
		if info, ok := smooth.PixelInfo(src, p.X, p.Y); ok {
			b.out.printf("%s @ %d,%d: %s\n", path, p.X, p.Y, info)
		} else {
			b.out.printf("%s @ %d,%d: no pixel data\n", path, p.X, p.Y)
		}
	}

	dst, err := b.engine.ProcessContext(ctx, src, b.opts.cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	outPath := outputPath(b.opts.outDir, path, b.opts.format)
	if err := dst.SaveImage(outPath); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	b.log.Debug("smoothed", "input", path, "output", outPath, "elapsed", time.Since(start))
	b.out.printf("%s -> %s (%d×%d, %d pixels, %v)\n",
		path, outPath, dst.Width(), dst.Height(), dst.Width()*dst.Height(), b.opts.cfg)
	return nil
}

// outputPath returns dir/<base>_smoothed.<format>.
func outputPath(dir, input, format string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+"_smoothed."+format)
}

// reporter serializes user-facing output lines.
// Numbers are printed with locale digit grouping.
type reporter struct {
	mu sync.Mutex
	p  *message.Printer
	w  io.Writer
}

func newReporter(w io.Writer) *reporter {
	return &reporter{p: message.NewPrinter(language.English), w: w}
}

func (r *reporter) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = r.p.Fprintf(r.w, format, args...)
}
