package model

import "fmt"

// Trade records a completed match between an incoming (active) order and a
// resting (passive) order. Price is always the passive order's limit price.
// Trades are immutable; the engine returns them and never stores them.
type Trade struct {
	ActiveOrderID  string
	PassiveOrderID string
	Price          int64
	Quantity       int64
}

func (t Trade) String() string {
	return fmt.Sprintf("TRADE %d@%d (#%s -> #%s)", t.Quantity, t.Price, t.ActiveOrderID, t.PassiveOrderID)
}
