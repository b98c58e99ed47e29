package smooth

import (
	"context"
	"errors"
	"time"

	"github.com/gogpu/smooth/internal/filter"
	intImage "github.com/gogpu/smooth/internal/image"
	"github.com/gogpu/smooth/internal/parallel"
)

// Engine runs the desaturate and box blur stages over row bands.
//
// Each stage reads its input buffer and writes a freshly allocated output,
// so the read and write sides of a convolution never alias. An Engine with
// more than one worker owns a goroutine pool; call Close when done.
//
// Thread safety: Engine is safe for concurrent use, including a Close that
// races with running passes; bands submitted after Close run inline.
type Engine struct {
	pool       *parallel.WorkerPool
	workers    int
	bandHeight int
}

// NewEngine creates an Engine. Without options it is sequential.
func NewEngine(opts ...EngineOption) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{bandHeight: o.bandHeight, workers: 1}
	if o.workers != 1 {
		e.pool = parallel.NewWorkerPool(o.workers)
		e.workers = e.pool.Workers()
	}
	return e
}

// Close releases the worker pool, if any. Close is safe to call multiple
// times. A closed Engine still works; it runs bands on the calling goroutine.
func (e *Engine) Close() {
	if e.pool != nil {
		e.pool.Close()
	}
}

// Workers returns the number of goroutines used per pass.
func (e *Engine) Workers() int {
	return e.workers
}

// Desaturate returns a copy of buf with R, G and B replaced by (R+G+B)/3.
// Alpha is unchanged. Returns nil for a nil buffer.
func (e *Engine) Desaturate(buf *PixelBuffer) *PixelBuffer {
	if buf == nil {
		return nil
	}
	// Background is never cancelled, so run cannot fail here.
	out, _ := e.run(context.Background(), filter.NewDesaturateFilter(), buf)
	return out
}

// BoxBlur returns the box-blurred copy of buf for radius 1 (3×3) or 2 (5×5).
// Other radii fail with ErrInvalidConfig before any work is done.
func (e *Engine) BoxBlur(buf *PixelBuffer, radius int) (*PixelBuffer, error) {
	return e.BoxBlurContext(context.Background(), buf, radius)
}

// BoxBlurContext is BoxBlur with cancellation checked between row bands.
func (e *Engine) BoxBlurContext(ctx context.Context, buf *PixelBuffer, radius int) (*PixelBuffer, error) {
	if err := validateRadius(radius); err != nil {
		return nil, err
	}
	if buf == nil {
		return nil, ErrInvalidDimensions
	}
	return e.run(ctx, filter.NewBoxBlurFilter(radius), buf)
}

// Process runs the configured pipeline: desaturate (if cfg.Grayscale), then
// box blur. cfg is validated before any computation.
func (e *Engine) Process(buf *PixelBuffer, cfg FilterConfig) (*PixelBuffer, error) {
	return e.ProcessContext(context.Background(), buf, cfg)
}

// ProcessContext is Process with cancellation checked between row bands.
// A cancelled run returns the context error and no buffer.
func (e *Engine) ProcessContext(ctx context.Context, buf *PixelBuffer, cfg FilterConfig) (*PixelBuffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if buf == nil {
		return nil, ErrInvalidDimensions
	}

	start := time.Now()
	log := Logger()

	stages := make([]filter.Filter, 0, 2)
	if cfg.Grayscale {
		stages = append(stages, filter.NewDesaturateFilter())
	}
	stages = append(stages, filter.NewBoxBlurFilter(cfg.Radius))

	cur := buf
	for _, f := range stages {
		next, err := e.run(ctx, f, cur)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				log.Warn("smooth: process cancelled", "stage", f.Name(), "err", err)
			}
			return nil, err
		}
		cur = next
	}

	log.Debug("smooth: process done",
		"config", cfg.String(),
		"width", buf.Width(),
		"height", buf.Height(),
		"elapsed", time.Since(start))
	return cur, nil
}

// run applies f to every row of src and returns the new buffer.
func (e *Engine) run(ctx context.Context, f filter.Filter, src *PixelBuffer) (*PixelBuffer, error) {
	dst, err := intImage.NewPixelBuffer(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}

	bands := parallel.SplitRows(src.Height(), e.bandHeight)
	Logger().Debug("smooth: process",
		"filter", f.Name(),
		"width", src.Width(),
		"height", src.Height(),
		"bands", len(bands),
		"workers", e.workers)

	err = parallel.ForEachBand(ctx, e.pool, bands, func(b parallel.Band) {
		f.ApplyRows(src, dst, b.Y0, b.Y1)
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// defaultEngine backs the package-level functions. It has no pool.
var defaultEngine = NewEngine()

// Desaturate returns a desaturated copy of buf using the sequential engine.
func Desaturate(buf *PixelBuffer) *PixelBuffer {
	return defaultEngine.Desaturate(buf)
}

// BoxBlur returns a box-blurred copy of buf using the sequential engine.
func BoxBlur(buf *PixelBuffer, radius int) (*PixelBuffer, error) {
	return defaultEngine.BoxBlur(buf, radius)
}

// Process runs the configured pipeline using the sequential engine.
func Process(buf *PixelBuffer, cfg FilterConfig) (*PixelBuffer, error) {
	return defaultEngine.Process(buf, cfg)
}

// ProcessContext runs the configured pipeline using the sequential engine,
// checking ctx between row bands.
func ProcessContext(ctx context.Context, buf *PixelBuffer, cfg FilterConfig) (*PixelBuffer, error) {
	return defaultEngine.ProcessContext(ctx, buf, cfg)
}
