package model

import (
	"errors"
	"fmt"
	"strings"
)

type Side string

const (
	BUY  Side = "BUY"
	SELL Side = "SELL"
)

var (
	ErrInvalidSide     = errors.New("invalid side: must be BUY or SELL")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Valid reports whether s is one of the two known sides.
func (s Side) Valid() bool {
	return s == BUY || s == SELL
}

// Opposite returns the other side. Result is undefined for an invalid side.
func (s Side) Opposite() Side {
	if s == BUY {
		return SELL
	}
	return BUY
}

// Order is a limit order. ID, Side and Price are fixed for the order's
// lifetime; Quantity decreases as the order is filled and the order is
// considered empty at zero. Sequence is assigned by the engine when the
// order is accepted and is used only to break price ties by arrival.
//
// Only the engine may mutate an order once it has been submitted.
type Order struct {
	ID       string
	Side     Side
	Price    int64 // integer price units, may be negative
	Quantity int64
	Sequence uint64
}

// Validate checks basic syntactic correctness of the order before submission.
func (o *Order) Validate() error {
	if o == nil {
		return errors.New("order is nil")
	}
	if !o.Side.Valid() {
		return fmt.Errorf("%w (got %q)", ErrInvalidSide, string(o.Side))
	}
	if o.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be >= 0, got %d", ErrInvalidQuantity, o.Quantity)
	}
	return nil
}

// IsEmpty reports whether the order has no remaining quantity.
func (o *Order) IsEmpty() bool {
	return o.Quantity == 0
}

// DecreaseQuantity reduces the remaining quantity by qty. A negative qty or
// a qty exceeding the remaining quantity is rejected; the order is unchanged
// on error.
func (o *Order) DecreaseQuantity(qty int64) error {
	if qty < 0 {
		return fmt.Errorf("%w: negative decrease %d", ErrInvalidQuantity, qty)
	}
	if qty > o.Quantity {
		return fmt.Errorf("%w: decrease %d exceeds remaining %d", ErrInvalidQuantity, qty, o.Quantity)
	}
	o.Quantity -= qty
	return nil
}

// String renders the order in the same form the console accepts it,
// e.g. "buy 100@50 #1".
func (o *Order) String() string {
	return fmt.Sprintf("%s %d@%d #%s", strings.ToLower(string(o.Side)), o.Quantity, o.Price, o.ID)
}
