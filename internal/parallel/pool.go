package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a persistent pool of goroutines that executes row bands.
//
// Workers are started once and reused across many passes, so a long-lived
// Engine does not pay goroutine spawn cost per image.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// work is the shared task queue.
	work chan func()

	// done is closed by Close.
	done chan struct{}

	// wg waits for all workers to exit.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool

	// mu is held for reading while ExecuteAll submits and for writing while
	// Close shuts the queue, so no task is sent after the workers drain.
	mu sync.RWMutex
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		work:    make(chan func(), workers*2),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}

	return p
}

// worker runs tasks until the pool is closed and the queue is drained.
func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case fn := <-p.work:
			fn()
		case <-p.done:
			for {
				select {
				case fn := <-p.work:
					fn()
				default:
					return
				}
			}
		}
	}
}

// ExecuteAll runs every task on the pool and waits for all of them.
// If the pool is closed, tasks run on the calling goroutine so that
// ExecuteAll always completes the full set.
func (p *WorkerPool) ExecuteAll(tasks []func()) {
	if len(tasks) == 0 {
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(tasks))

	p.mu.RLock()
	for _, fn := range tasks {
		task := func() {
			defer wg.Done()
			fn()
		}

		if !p.running.Load() {
			task()
			continue
		}
		p.work <- task
	}
	p.mu.RUnlock()

	wg.Wait()
}

// Close stops the pool after queued work completes.
// Close is safe to call multiple times and concurrently with ExecuteAll:
// tasks submitted before Close are drained by the workers, later ones
// run on the submitting goroutine.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
