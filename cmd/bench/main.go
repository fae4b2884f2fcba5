package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"github.com/omx-labs/order-matcher-go/pkg/engine"
	"github.com/omx-labs/order-matcher-go/pkg/metrics"
	"github.com/omx-labs/order-matcher-go/pkg/model"
)

// Local throughput/latency driver: pumps random limit orders through a
// single engine instance and reports submit latency percentiles.
func main() {
	var (
		total  = flag.Int("n", 100000, "total orders to submit")
		seed   = flag.Int64("seed", 1, "rng seed")
		base   = flag.Int64("base", 100, "base price")
		spread = flag.Int64("spread", 10, "max price offset from base (both directions)")
		maxQty = flag.Int64("qty", 100, "max order quantity")
	)
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	m := engine.NewMatcher("BENCH", nil)

	durations := make([]float64, 0, *total) // ms
	start := time.Now()

	for i := 0; i < *total; i++ {
		side := model.BUY
		if rng.Intn(2) == 1 {
			side = model.SELL
		}
		o := &model.Order{
			ID:       strconv.Itoa(i),
			Side:     side,
			Price:    *base + rng.Int63n(*spread*2+1) - *spread,
			Quantity: 1 + rng.Int63n(*maxQty),
		}

		t0 := time.Now()
		if _, err := m.Submit(o); err != nil {
			fmt.Printf("submit error: %v\n", err)
			return
		}
		durations = append(durations, time.Since(t0).Seconds()*1000.0)
	}

	elapsed := time.Since(start).Seconds()

	sort.Float64s(durations)
	var sum, max float64
	for _, v := range durations {
		sum += v
		if v > max {
			max = v
		}
	}
	mean := 0.0
	if len(durations) > 0 {
		mean = sum / float64(len(durations))
	}

	// nearest-rank percentile
	p := func(q float64) float64 {
		n := len(durations)
		if n == 0 {
			return 0
		}
		idx := int(math.Floor(q*float64(n-1) + 0.5))
		if idx < 0 {
			idx = 0
		}
		if idx >= n {
			idx = n - 1
		}
		return durations[idx]
	}

	buys, _ := m.Orders(model.BUY)
	sells, _ := m.Orders(model.SELL)

	fmt.Printf("SUMMARY: total=%d duration=%.2fs orders/s=%.2f\n",
		*total, elapsed, float64(*total)/elapsed)
	fmt.Printf("LATENCY(ms): mean=%.4f max=%.4f p50=%.4f p90=%.4f p99=%.4f\n",
		mean, max, p(0.50), p(0.90), p(0.99))
	fmt.Printf("BOOK: resting_buys=%d resting_sells=%d\n", len(buys), len(sells))
	fmt.Printf("METRICS: orders=%d trades=%d quantity_matched=%d\n",
		metrics.GetOrdersAccepted(), metrics.GetTradesExecuted(), metrics.GetQuantityMatched())
}
