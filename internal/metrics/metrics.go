// Package metrics exposes the matching engine's Prometheus instrumentation.
// Trimmed down from the retrieved perp-dex repo's metrics/prometheus.go to
// the concerns this engine actually has: orders in, trades out, and book
// depth.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fenrir/internal/common"
)

// Collector holds every metric this engine emits.
type Collector struct {
	OrdersPlaced    *prometheus.CounterVec
	OrdersRejected  *prometheus.CounterVec
	OrdersCancelled *prometheus.CounterVec
	TradesTotal     *prometheus.CounterVec
	TradeVolume     *prometheus.CounterVec
	BookDepth       *prometheus.GaugeVec
}

var (
	collector     *Collector
	collectorOnce sync.Once
)

// Get returns the process-wide metrics collector, registering its
// descriptors with the default Prometheus registry on first use.
func Get() *Collector {
	collectorOnce.Do(func() {
		collector = &Collector{
			OrdersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "fenrir_orders_placed_total",
				Help: "Add calls that returned without an engine error, by symbol and side (duplicate ids and FAK orders with no cross included).",
			}, []string{"symbol", "side"}),
			OrdersRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "fenrir_orders_rejected_total",
				Help: "Add calls that failed with an engine error, by symbol and reason.",
			}, []string{"symbol", "reason"}),
			OrdersCancelled: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "fenrir_orders_cancelled_total",
				Help: "Orders removed via Cancel, by symbol.",
			}, []string{"symbol"}),
			TradesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "fenrir_trades_total",
				Help: "Trades produced by the matcher, by symbol.",
			}, []string{"symbol"}),
			TradeVolume: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "fenrir_trade_volume_total",
				Help: "Cumulative matched quantity, by symbol.",
			}, []string{"symbol"}),
			BookDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
				Name: "fenrir_book_depth_quantity",
				Help: "Resting quantity at the best price level, by symbol and side.",
			}, []string{"symbol", "side"}),
		}
		prometheus.MustRegister(
			collector.OrdersPlaced,
			collector.OrdersRejected,
			collector.OrdersCancelled,
			collector.TradesTotal,
			collector.TradeVolume,
			collector.BookDepth,
		)
	})
	return collector
}

// Handler serves the /metrics scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveAdd records an Add call's outcome: either Add returned without
// error (trades may be empty; this includes a silently rejected duplicate or
// FAK order, which Add does not distinguish) or, with rejected set, Add
// failed with an engine error.
func (c *Collector) ObserveAdd(symbol string, side common.Side, trades common.Trades, rejected bool, reason string) {
	if rejected {
		c.OrdersRejected.WithLabelValues(symbol, reason).Inc()
		return
	}
	c.OrdersPlaced.WithLabelValues(symbol, side.String()).Inc()
	if len(trades) > 0 {
		c.TradesTotal.WithLabelValues(symbol).Add(float64(len(trades)))
		var volume float64
		for _, t := range trades {
			volume += float64(t.BidFill.Quantity)
		}
		c.TradeVolume.WithLabelValues(symbol).Add(volume)
	}
}

// ObserveCancel records a successful Cancel.
func (c *Collector) ObserveCancel(symbol string) {
	c.OrdersCancelled.WithLabelValues(symbol).Inc()
}

// ObserveDepth records the best-price resting quantity on each side.
func (c *Collector) ObserveDepth(symbol string, bids, asks []common.LevelInfo) {
	if len(bids) > 0 {
		c.BookDepth.WithLabelValues(symbol, common.Buy.String()).Set(float64(bids[0].Quantity))
	} else {
		c.BookDepth.WithLabelValues(symbol, common.Buy.String()).Set(0)
	}
	if len(asks) > 0 {
		c.BookDepth.WithLabelValues(symbol, common.Sell.String()).Set(float64(asks[0].Quantity))
	} else {
		c.BookDepth.WithLabelValues(symbol, common.Sell.String()).Set(0)
	}
}
