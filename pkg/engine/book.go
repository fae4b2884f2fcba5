package engine

import "github.com/omx-labs/order-matcher-go/pkg/model"

// book is one side of the order book. Its orders slice is kept in strict
// priority order at all times: best price first (highest for BUY, lowest for
// SELL), ties broken by ascending sequence.
type book struct {
	side   model.Side
	orders []*model.Order
}

func newBook(side model.Side) *book {
	return &book{side: side}
}

func (b *book) empty() bool {
	return len(b.orders) == 0
}

// best returns the highest-priority resting order, or nil if the side is empty.
func (b *book) best() *model.Order {
	if len(b.orders) == 0 {
		return nil
	}
	return b.orders[0]
}

// popBest removes and returns the highest-priority resting order.
func (b *book) popBest() *model.Order {
	o := b.orders[0]
	b.orders = b.orders[1:]
	return o
}

// pushBest reinserts an order at the front of the book. Only valid for an
// order that was just popped: it keeps its original sequence, and nothing
// with equal-or-better price and an earlier sequence can exist ahead of it.
func (b *book) pushBest(o *model.Order) {
	b.orders = append(b.orders, nil)
	copy(b.orders[1:], b.orders)
	b.orders[0] = o
}

// before reports whether resting order a has strictly higher priority than o
// on this side.
func (b *book) before(a, o *model.Order) bool {
	if a.Price != o.Price {
		if b.side == model.BUY {
			return a.Price > o.Price
		}
		return a.Price < o.Price
	}
	return a.Sequence < o.Sequence
}

// insert places o at the position that preserves the side's priority order.
// Linear scan; the book is small and correctness is the contract here.
func (b *book) insert(o *model.Order) {
	i := len(b.orders)
	for j, r := range b.orders {
		if !b.before(r, o) {
			i = j
			break
		}
	}
	b.orders = append(b.orders, nil)
	copy(b.orders[i+1:], b.orders[i:])
	b.orders[i] = o
}

// snapshot returns a copy of the priority-ordered sequence. The copy protects
// the book structure; callers must not mutate the orders themselves.
func (b *book) snapshot() []*model.Order {
	out := make([]*model.Order, len(b.orders))
	copy(out, b.orders)
	return out
}
