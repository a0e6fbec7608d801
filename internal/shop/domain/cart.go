package domain

import "fmt"

// CartLine is a single cart entry. It snapshots the product's name and unit
// price at the time the line is created but never the stock; stock is always
// checked against the live catalog value handed in by the caller.
type CartLine struct {
	ProductID      int64  `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

// LineTotalCents is the derived value unit price times quantity.
func (l CartLine) LineTotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

// Cart holds the user's uncommitted selection, keyed by product id.
// Lines keep first-insertion order so listings are deterministic.
type Cart struct {
	lines map[int64]*CartLine
	order []int64
}

// NewCart constructs an empty cart.
func NewCart() *Cart {
	return &Cart{lines: make(map[int64]*CartLine)}
}

// AddItem creates a line for the product or increments an existing one.
// The combined quantity must not exceed the product's current stock.
func (c *Cart) AddItem(p Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	if line, ok := c.lines[p.ID]; ok {
		if line.Quantity+quantity > p.Stock {
			return fmt.Errorf("%w: product %d has %d in stock", ErrInsufficientStock, p.ID, p.Stock)
		}
		line.Quantity += quantity
		return nil
	}

	if quantity > p.Stock {
		return fmt.Errorf("%w: product %d has %d in stock", ErrInsufficientStock, p.ID, p.Stock)
	}

	c.lines[p.ID] = &CartLine{
		ProductID:      p.ID,
		Name:           p.Name,
		UnitPriceCents: p.PriceCents,
		Quantity:       quantity,
	}
	c.order = append(c.order, p.ID)
	return nil
}

// UpdateQuantity replaces the line's quantity with an absolute value.
func (c *Cart) UpdateQuantity(p Product, quantity int) error {
	line, ok := c.lines[p.ID]
	if !ok {
		return ErrItemNotFound
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > p.Stock {
		return fmt.Errorf("%w: product %d has %d in stock", ErrInsufficientStock, p.ID, p.Stock)
	}

	line.Quantity = quantity
	return nil
}

// RemoveItem drops the line for the product. Removing an absent id is a no-op.
func (c *Cart) RemoveItem(productID int64) {
	if _, ok := c.lines[productID]; !ok {
		return
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// SubtotalCents sums all line totals. An empty cart totals zero.
func (c *Cart) SubtotalCents() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.LineTotalCents()
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear removes all lines. Called after a successful checkout.
func (c *Cart) Clear() {
	c.lines = make(map[int64]*CartLine)
	c.order = nil
}

// Lines returns copies of the cart lines in insertion order. Mutating the
// result does not affect the cart.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, 0, len(c.order))
	for _, id := range c.order {
		lines = append(lines, *c.lines[id])
	}
	return lines
}
