package model

import (
	"errors"
	"testing"
)

func TestOrderValidate(t *testing.T) {
	cases := []struct {
		name string
		o    *Order
		ok   bool
	}{
		{
			"valid buy",
			&Order{ID: "1", Side: BUY, Price: 100, Quantity: 10},
			true,
		},
		{
			"valid sell at negative price",
			&Order{ID: "2", Side: SELL, Price: -5, Quantity: 1},
			true,
		},
		{
			"zero quantity is allowed",
			&Order{ID: "3", Side: BUY, Price: 100, Quantity: 0},
			true,
		},
		{
			"invalid side",
			&Order{ID: "4", Side: "BLAH", Price: 100, Quantity: 1},
			false,
		},
		{
			"empty side",
			&Order{ID: "5", Price: 100, Quantity: 1},
			false,
		},
		{
			"negative quantity",
			&Order{ID: "6", Side: SELL, Price: 100, Quantity: -1},
			false,
		},
	}

	for _, c := range cases {
		err := c.o.Validate()
		if c.ok && err != nil {
			t.Fatalf("case %q: expected valid but got error: %v", c.name, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("case %q: expected error but got nil", c.name)
		}
	}
}

func TestDecreaseQuantity(t *testing.T) {
	o := &Order{ID: "1", Side: BUY, Price: 100, Quantity: 10}

	if err := o.DecreaseQuantity(4); err != nil {
		t.Fatalf("expected decrease to succeed, got %v", err)
	}
	if o.Quantity != 6 {
		t.Fatalf("expected remaining 6, got %d", o.Quantity)
	}

	// decrease past remaining must fail and leave the order unchanged
	err := o.DecreaseQuantity(7)
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if o.Quantity != 6 {
		t.Fatalf("quantity changed on failed decrease: %d", o.Quantity)
	}

	// negative decrease must fail
	if err := o.DecreaseQuantity(-1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity for negative decrease, got %v", err)
	}

	// draining to zero makes the order empty
	if err := o.DecreaseQuantity(6); err != nil {
		t.Fatalf("expected decrease to succeed, got %v", err)
	}
	if !o.IsEmpty() {
		t.Fatalf("expected order to be empty at quantity 0")
	}
}

func TestSideOpposite(t *testing.T) {
	if BUY.Opposite() != SELL || SELL.Opposite() != BUY {
		t.Fatalf("opposite sides are wrong")
	}
}

func TestStringForms(t *testing.T) {
	o := &Order{ID: "7", Side: SELL, Quantity: 50, Price: 99}
	if got := o.String(); got != "sell 50@99 #7" {
		t.Fatalf("unexpected order string: %q", got)
	}
	tr := Trade{ActiveOrderID: "2", PassiveOrderID: "1", Price: 100, Quantity: 5}
	if got := tr.String(); got != "TRADE 5@100 (#2 -> #1)" {
		t.Fatalf("unexpected trade string: %q", got)
	}
}
