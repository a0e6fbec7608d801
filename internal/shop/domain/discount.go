package domain

import "math"

// DiscountPolicy maps a subtotal to a discount amount. Implementations are
// pure: same subtotal in, same discount out, no hidden state.
type DiscountPolicy interface {
	Apply(subtotalCents int64) int64
}

// NoDiscount never discounts anything.
type NoDiscount struct{}

func (NoDiscount) Apply(int64) int64 { return 0 }

// PercentageDiscount takes a flat percentage off the subtotal. The percent is
// caller-supplied and deliberately unbounded here; checkout clamps the applied
// amount to the subtotal.
type PercentageDiscount struct {
	Percent float64
}

func (d PercentageDiscount) Apply(subtotalCents int64) int64 {
	return int64(math.Round(float64(subtotalCents) * d.Percent / 100))
}

// FixedAmountDiscount takes a fixed amount off, capped at the subtotal so the
// resulting total never goes negative.
type FixedAmountDiscount struct {
	AmountCents int64
}

func (d FixedAmountDiscount) Apply(subtotalCents int64) int64 {
	if d.AmountCents > subtotalCents {
		return subtotalCents
	}
	return d.AmountCents
}

// ThresholdPercentageDiscount applies a percentage only once the subtotal
// reaches the threshold.
type ThresholdPercentageDiscount struct {
	ThresholdCents int64
	Percent        float64
}

func (d ThresholdPercentageDiscount) Apply(subtotalCents int64) int64 {
	if subtotalCents < d.ThresholdCents {
		return 0
	}
	return PercentageDiscount{Percent: d.Percent}.Apply(subtotalCents)
}
