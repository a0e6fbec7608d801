package domain

import (
	"errors"
	"strings"
)

// Product is a purchasable catalog entry. Stock is the only field that
// changes after seeding, and it only decreases at checkout.
type Product struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	PriceCents int64  `json:"price_cents"`
	Stock      int    `json:"stock"`
}

// Validate ensures the product adheres to business constraints.
func (p Product) Validate() error {
	if p.ID <= 0 {
		return errors.New("product id must be positive")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("product name is required")
	}
	if p.PriceCents < 0 {
		return errors.New("price_cents must not be negative")
	}
	if p.Stock < 0 {
		return errors.New("stock must not be negative")
	}
	return nil
}

// Matches reports whether the product matches a search keyword,
// case-insensitively, on name or category.
func (p Product) Matches(keyword string) bool {
	keyword = strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(p.Name), keyword) ||
		strings.Contains(strings.ToLower(p.Category), keyword)
}
