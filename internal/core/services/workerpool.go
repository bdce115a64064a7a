package services

import (
	"context"
	"errors"
	"sync"
)

// ErrPoolClosed is returned when a job is submitted after Close.
var ErrPoolClosed = errors.New("worker pool closed")

// job is a unit of work submitted to the pool.
type job func(ctx context.Context)

// workerPool runs jobs on a fixed number of goroutines. The builder
// uses it to parallelise per-verse matching, which is pure CPU work.
type workerPool struct {
	jobs    chan job
	wg      sync.WaitGroup
	workers int

	closeMu sync.Mutex
	closed  bool
}

// newWorkerPool creates a pool with the given number of workers.
func newWorkerPool(workers int) *workerPool {
	if workers <= 0 {
		workers = 1
	}
	return &workerPool{
		jobs:    make(chan job, workers*2),
		workers: workers,
	}
}

// start launches the worker goroutines.
func (p *workerPool) start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-p.jobs:
					if !ok {
						return
					}
					j(ctx)
				}
			}
		}()
	}
}

// submit enqueues a job. Blocks when the queue is full.
func (p *workerPool) submit(j job) error {
	p.closeMu.Lock()
	defer p.closeMu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}
	p.jobs <- j
	return nil
}

// close stops accepting jobs and waits for in-flight work to finish.
func (p *workerPool) close() {
	p.closeMu.Lock()
	if p.closed {
		p.closeMu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.closeMu.Unlock()
	p.wg.Wait()
}
