package engine

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/omx-labs/order-matcher-go/pkg/metrics"
	"github.com/omx-labs/order-matcher-go/pkg/model"
)

// Matcher is a continuous limit-order matching engine for a single
// instrument. It keeps the buy and sell books in strict price-time priority
// and matches every incoming order against the opposite side before booking
// the remainder.
//
// One Matcher is one serialization domain: a single mutex guards Submit and
// Orders, so the books are never observable in a partially-updated state.
// Matchers for different instruments are independent.
type Matcher struct {
	mu         sync.Mutex
	instrument string
	seq        uint64
	buys       *book
	sells      *book
	log        *zap.Logger
}

// NewMatcher creates an empty matching engine for the named instrument.
// A nil logger disables logging.
func NewMatcher(instrument string, log *zap.Logger) *Matcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Matcher{
		instrument: instrument,
		buys:       newBook(model.BUY),
		sells:      newBook(model.SELL),
		log:        log.With(zap.String("instrument", instrument)),
	}
}

// Instrument returns the name the engine was created with.
func (m *Matcher) Instrument() string {
	return m.instrument
}

// Submit matches the order against the opposite book and rests any remainder
// in its own book. Returned trades are in the exact order they were
// generated. The order must not be touched by the caller afterwards; the
// engine owns it from here on.
//
// A zero-quantity order is a no-op: no trades, no state change, no sequence
// number consumed. A malformed order is rejected before any mutation.
func (m *Matcher) Submit(o *model.Order) ([]model.Trade, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.IsEmpty() {
		return nil, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	o.Sequence = m.seq

	own, opposite := m.buys, m.sells
	if o.Side == model.SELL {
		own, opposite = m.sells, m.buys
	}

	var trades []model.Trade
	for !o.IsEmpty() && !opposite.empty() && crosses(o, opposite.best()) {
		passive := opposite.popBest()
		qty := min(o.Quantity, passive.Quantity)
		mustDecrease(o, qty)
		mustDecrease(passive, qty)

		t := model.Trade{
			ActiveOrderID:  o.ID,
			PassiveOrderID: passive.ID,
			Price:          passive.Price,
			Quantity:       qty,
		}
		trades = append(trades, t)
		metrics.IncTradesExecuted()
		metrics.AddQuantityMatched(qty)
		m.log.Debug("trade",
			zap.String("active", t.ActiveOrderID),
			zap.String("passive", t.PassiveOrderID),
			zap.Int64("price", t.Price),
			zap.Int64("quantity", t.Quantity),
		)

		if !passive.IsEmpty() {
			// The passive order was first on its side and keeps its original
			// sequence, so it retains top priority there.
			opposite.pushBest(passive)
		}
	}

	if !o.IsEmpty() {
		own.insert(o)
	}

	metrics.IncOrdersAccepted()
	m.log.Debug("order accepted",
		zap.String("id", o.ID),
		zap.String("side", string(o.Side)),
		zap.Int64("price", o.Price),
		zap.Int64("remaining", o.Quantity),
		zap.Uint64("sequence", o.Sequence),
	)
	return trades, nil
}

// Orders returns the resting orders for the requested side in current
// priority order. The returned slice is a copy; the orders themselves must
// be treated as read-only.
func (m *Matcher) Orders(side model.Side) ([]*model.Order, error) {
	if !side.Valid() {
		return nil, fmt.Errorf("%w (got %q)", model.ErrInvalidSide, string(side))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if side == model.BUY {
		return m.buys.snapshot(), nil
	}
	return m.sells.snapshot(), nil
}

// crosses reports whether the incoming order and the best opposite resting
// order can trade: buy at or above the resting sell price, or sell at or
// below the resting buy price.
func crosses(incoming, passive *model.Order) bool {
	if incoming.Side == model.BUY {
		return incoming.Price >= passive.Price
	}
	return incoming.Price <= passive.Price
}

// mustDecrease applies a quantity decrease that the match loop has already
// bounded by min(). A failure here is a matching-logic defect, not a
// recoverable condition.
func mustDecrease(o *model.Order, qty int64) {
	if err := o.DecreaseQuantity(qty); err != nil {
		panic(fmt.Sprintf("matching invariant violated for order #%s: %v", o.ID, err))
	}
}
