package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// WorkerPool runs tile tasks on a fixed number of goroutines
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool; numWorkers <= 0 uses one worker per CPU
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run calls render once per tile and returns when every tile is done.
// After the first error, or once ctx is done, no new tiles are started
// and that error is returned.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, render func(tile *Tile) error) error {
	g, gctx := errgroup.WithContext(ctx)

	taskQueue := make(chan *Tile)
	g.Go(func() error {
		defer close(taskQueue)
		for _, tile := range tiles {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case taskQueue <- tile:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < wp.numWorkers; i++ {
		g.Go(func() error {
			for tile := range taskQueue {
				if err := render(tile); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
