// Package parallel runs row-band work for the smoothing engine.
//
// An image of height H is split into contiguous bands of rows. Each band is
// an independent unit of work: it reads the shared source buffer and writes
// only its own rows of the destination, so bands need no locking. The
// context is checked before each band starts; a cancelled pass skips the
// remaining bands and reports the context error.
package parallel

import (
	"context"
)

// DefaultBandHeight is the number of rows per band when none is configured.
// It matches the 64-pixel tile edge used for cache-friendly work units.
const DefaultBandHeight = 64

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows partitions [0, height) into bands of at most bandHeight rows.
// If bandHeight <= 0, DefaultBandHeight is used.
// Returns nil for a non-positive height.
func SplitRows(height, bandHeight int) []Band {
	if height <= 0 {
		return nil
	}
	if bandHeight <= 0 {
		bandHeight = DefaultBandHeight
	}

	bands := make([]Band, 0, (height+bandHeight-1)/bandHeight)
	for y := 0; y < height; y += bandHeight {
		bands = append(bands, Band{Y0: y, Y1: min(y+bandHeight, height)})
	}
	return bands
}

// ForEachBand calls fn for every band.
//
// With a nil pool the bands run in order on the calling goroutine; otherwise
// they are distributed across the pool's workers. fn must only write state
// owned by its band. ForEachBand returns ctx.Err() if the context was
// cancelled before all bands ran.
func ForEachBand(ctx context.Context, pool *WorkerPool, bands []Band, fn func(Band)) error {
	if pool == nil || pool.Workers() == 1 || len(bands) == 1 {
		for _, b := range bands {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(b)
		}
		return ctx.Err()
	}

	tasks := make([]func(), len(bands))
	for i, b := range bands {
		tasks[i] = func() {
			if ctx.Err() != nil {
				return
			}
			fn(b)
		}
	}
	pool.ExecuteAll(tasks)

	return ctx.Err()
}
