package utils

import (
	"github.com/shopspring/decimal"
)

// milliunitExp is the decimal exponent of one milliunit.
const milliunitExp = -3

func FromMilliunits(milliunits int64) decimal.Decimal {
	return decimal.New(milliunits, milliunitExp)
}

// FormatMilliunits renders a signed milliunit amount with two decimals.
func FormatMilliunits(milliunits int64) string {
	return FromMilliunits(milliunits).StringFixed(2)
}

// FormatCost renders the magnitude of a milliunit amount, the form the
// expense service expects: -5000 becomes "5.00".
func FormatCost(milliunits int64) string {
	return FromMilliunits(milliunits).Abs().StringFixed(2)
}

// FormatDollars renders a decimal amount for display, e.g. "$12.50".
func FormatDollars(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
