package journal

import (
	"errors"
	"sync"

	"github.com/omx-labs/order-matcher-go/pkg/model"
)

var ErrOrderNotFound = errors.New("order not found")

// Journal is the caller-side record of a trading session: every submitted
// order by id, and every executed trade in chronological order. The engine
// never stores trades, so whoever submits orders keeps them here.
type Journal struct {
	mu     sync.RWMutex
	orders map[string]*model.Order
	trades []model.Trade
}

func New() *Journal {
	return &Journal{
		orders: make(map[string]*model.Order),
	}
}

// RecordOrder remembers a submitted order under its id. Resubmitting an id
// overwrites the earlier entry; uniqueness is the caller's responsibility.
func (j *Journal) RecordOrder(o *model.Order) {
	j.mu.Lock()
	j.orders[o.ID] = o
	j.mu.Unlock()
}

// RecordTrades appends executed trades in the order they were generated.
func (j *Journal) RecordTrades(trades []model.Trade) {
	if len(trades) == 0 {
		return
	}
	j.mu.Lock()
	j.trades = append(j.trades, trades...)
	j.mu.Unlock()
}

// Order returns the recorded order with the given id.
func (j *Journal) Order(id string) (*model.Order, error) {
	j.mu.RLock()
	o, ok := j.orders[id]
	j.mu.RUnlock()
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// Trades returns a copy of the session's trade history.
func (j *Journal) Trades() []model.Trade {
	j.mu.RLock()
	out := make([]model.Trade, len(j.trades))
	copy(out, j.trades)
	j.mu.RUnlock()
	return out
}
