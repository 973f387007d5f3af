package httpapi

import (
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"
)

const taskChanSize = 100

// WorkerFunction processes one task. This pool starts a fixed number of
// goroutines once and lets each block on the shared task channel, rather
// than launching a goroutine per idle tick.
type WorkerFunction = func(t *tomb.Tomb, task string) error

// WorkerPool runs a fixed number of goroutines pulling symbol names off a
// shared channel, used here to fan the depth reporter's snapshot work
// across a small pool instead of one goroutine per symbol.
type WorkerPool struct {
	n     int
	tasks chan string
}

// NewWorkerPool returns a pool sized for size concurrent workers.
func NewWorkerPool(size int) *WorkerPool {
	return &WorkerPool{
		n:     size,
		tasks: make(chan string, taskChanSize),
	}
}

// Start launches the pool's workers under t, each running work.
func (pool *WorkerPool) Start(t *tomb.Tomb, work WorkerFunction) {
	log.Info().Int("workers", pool.n).Msg("depth reporter pool starting")
	for i := 0; i < pool.n; i++ {
		t.Go(func() error {
			return pool.loop(t, work)
		})
	}
}

// Submit enqueues a symbol for a worker to process. It blocks if every
// worker is busy and the channel is full.
func (pool *WorkerPool) Submit(symbol string) {
	pool.tasks <- symbol
}

func (pool *WorkerPool) loop(t *tomb.Tomb, work WorkerFunction) error {
	for {
		select {
		case <-t.Dying():
			return nil
		case task := <-pool.tasks:
			if err := work(t, task); err != nil {
				log.Error().Err(err).Str("symbol", task).Msg("depth reporter worker exiting")
				return err
			}
		}
	}
}
