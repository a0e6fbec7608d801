package domain

import (
	"errors"
	"strings"
	"time"
)

// Order is the immutable record of a completed checkout. Lines are copies of
// the cart lines at checkout time, so later cart mutation cannot alter it.
type Order struct {
	ID            string     `json:"id"`
	Lines         []CartLine `json:"lines"`
	SubtotalCents int64      `json:"subtotal_cents"`
	DiscountCents int64      `json:"discount_cents"`
	TotalCents    int64      `json:"total_cents"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Validate ensures the order adheres to business constraints.
func (o Order) Validate() error {
	if strings.TrimSpace(o.ID) == "" {
		return errors.New("order id is required")
	}
	if len(o.Lines) == 0 {
		return errors.New("order must contain at least one line")
	}
	for _, line := range o.Lines {
		if line.Quantity <= 0 {
			return errors.New("order line quantity must be positive")
		}
	}
	if o.DiscountCents < 0 || o.DiscountCents > o.SubtotalCents {
		return errors.New("discount must be between zero and the subtotal")
	}
	if o.TotalCents != o.SubtotalCents-o.DiscountCents {
		return errors.New("total must equal subtotal minus discount")
	}
	return nil
}
