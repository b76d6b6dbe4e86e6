// Package commission splits a settled charge between the platform and the hotel.
package commission

import "github.com/shopspring/decimal"

// PlatformRate is the platform's share of every captured charge
var PlatformRate = decimal.RequireFromString("0.0666")

// Split is the outcome of a commission calculation
type Split struct {
	Commission decimal.Decimal `json:"platform_commission"`
	Payable    decimal.Decimal `json:"payable_to_hotel"`
}

// Calculate rounds totalAmount*rate to cents; the hotel receives the remainder,
// so Commission+Payable always equals totalAmount exactly.
func Calculate(totalAmount, rate decimal.Decimal) Split {
	c := totalAmount.Mul(rate).Round(2)
	return Split{
		Commission: c,
		Payable:    totalAmount.Sub(c),
	}
}
