package smooth

// EngineOption configures an Engine during creation.
//
// Example:
//
//	// Sequential engine (same as the package-level functions)
//	e := smooth.NewEngine()
//
//	// One worker per CPU, 32-row bands
//	e := smooth.NewEngine(smooth.WithWorkers(0), smooth.WithBandHeight(32))
//	defer e.Close()
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	workers    int
	bandHeight int
}

// defaultOptions returns the default engine options: one worker, default bands.
func defaultOptions() engineOptions {
	return engineOptions{
		workers:    1,
		bandHeight: 0, // parallel.DefaultBandHeight
	}
}

// WithWorkers sets the number of goroutines that process row bands.
// n <= 0 uses GOMAXPROCS. n == 1 runs everything on the calling goroutine.
func WithWorkers(n int) EngineOption {
	return func(o *engineOptions) {
		o.workers = n
	}
}

// WithBandHeight sets the number of rows per unit of work.
// Values <= 0 select the default of 64 rows.
func WithBandHeight(rows int) EngineOption {
	return func(o *engineOptions) {
		o.bandHeight = rows
	}
}
