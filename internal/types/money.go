// README: Common money value object used across API responses.
package types

import "math"

// Money is an amount in whole-or-fractional pounds with its ISO currency.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func NewMoney(amount float64, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// Rounded drops fractions to the nearest whole unit, as quotes are shown.
func (m Money) Rounded() Money {
	m.Amount = math.Round(m.Amount)
	return m
}
