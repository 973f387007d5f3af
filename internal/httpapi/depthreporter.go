package httpapi

import (
	"time"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"fenrir/internal/engine"
	"fenrir/internal/metrics"
)

const defaultReporterWorkers = 4

// DepthReporter periodically snapshots every registered symbol's depth and
// logs it, updating the depth gauges along the way.
type DepthReporter struct {
	registry *engine.Registry
	metrics  *metrics.Collector
	pool     *WorkerPool
	interval time.Duration
}

// NewDepthReporter builds a reporter over registry, ticking every
// interval.
func NewDepthReporter(registry *engine.Registry, interval time.Duration) *DepthReporter {
	return &DepthReporter{
		registry: registry,
		metrics:  metrics.Get(),
		pool:     NewWorkerPool(defaultReporterWorkers),
		interval: interval,
	}
}

// Run starts the worker pool and the ticking producer loop under t. It
// returns once t is dying.
func (r *DepthReporter) Run(t *tomb.Tomb) error {
	r.pool.Start(t, r.snapshot)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.Dying():
			return nil
		case <-ticker.C:
			for _, symbol := range r.registry.Symbols() {
				r.pool.Submit(symbol)
			}
		}
	}
}

func (r *DepthReporter) snapshot(_ *tomb.Tomb, symbol string) error {
	guard := r.registry.Guard(symbol)
	guard.Lock()
	book := r.registry.Get(symbol)
	bids, asks := book.Depth()
	size := book.Size()
	guard.Unlock()

	r.metrics.ObserveDepth(symbol, bids, asks)

	event := log.Info().Str("symbol", symbol).Int("size", size)
	if len(bids) > 0 {
		event = event.Int32("bestBid", int32(bids[0].Price)).Uint32("bestBidQty", uint32(bids[0].Quantity))
	}
	if len(asks) > 0 {
		event = event.Int32("bestAsk", int32(asks[0].Price)).Uint32("bestAskQty", uint32(asks[0].Quantity))
	}
	event.Msg("depth snapshot")
	return nil
}
