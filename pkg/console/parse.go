package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/omx-labs/order-matcher-go/pkg/model"
)

// ParseOrder parses an order entry of the form
//
//	buy|sell <quantity>@<price> [#<id>]
//
// e.g. "buy 100@50", "sell 25@-3 #7". The side keyword is case-insensitive.
// The id is optional; callers assign one when it is absent.
func ParseOrder(line string) (*model.Order, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return nil, fmt.Errorf("expected \"buy|sell <quantity>@<price> [#<id>]\", got %q", line)
	}

	var side model.Side
	switch strings.ToLower(fields[0]) {
	case "buy":
		side = model.BUY
	case "sell":
		side = model.SELL
	default:
		return nil, fmt.Errorf("unknown side %q: must be buy or sell", fields[0])
	}

	qtyStr, priceStr, ok := strings.Cut(fields[1], "@")
	if !ok {
		return nil, fmt.Errorf("expected <quantity>@<price>, got %q", fields[1])
	}
	qty, err := strconv.ParseInt(qtyStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad quantity %q: %v", qtyStr, err)
	}
	if qty < 0 {
		return nil, fmt.Errorf("quantity must be >= 0, got %d", qty)
	}
	price, err := strconv.ParseInt(priceStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad price %q: %v", priceStr, err)
	}

	var id string
	if len(fields) == 3 {
		if !strings.HasPrefix(fields[2], "#") || len(fields[2]) == 1 {
			return nil, fmt.Errorf("expected #<id>, got %q", fields[2])
		}
		id = fields[2][1:]
	}

	return &model.Order{ID: id, Side: side, Price: price, Quantity: qty}, nil
}
