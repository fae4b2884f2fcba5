package metrics

import "sync/atomic"

// Simple process-level counters shared by the engine and its callers.
// Intentionally minimal; there is no metrics endpoint to feed.

var (
	ordersAccepted  int64
	tradesExecuted  int64
	quantityMatched int64
)

// IncOrdersAccepted counts one order accepted by an engine (matched,
// partially matched or rested).
func IncOrdersAccepted() {
	atomic.AddInt64(&ordersAccepted, 1)
}

// IncTradesExecuted counts one generated trade.
func IncTradesExecuted() {
	atomic.AddInt64(&tradesExecuted, 1)
}

// AddQuantityMatched accumulates matched quantity across all trades.
func AddQuantityMatched(qty int64) {
	atomic.AddInt64(&quantityMatched, qty)
}

func GetOrdersAccepted() int64  { return atomic.LoadInt64(&ordersAccepted) }
func GetTradesExecuted() int64  { return atomic.LoadInt64(&tradesExecuted) }
func GetQuantityMatched() int64 { return atomic.LoadInt64(&quantityMatched) }
