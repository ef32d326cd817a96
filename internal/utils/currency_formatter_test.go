package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "5.00", FormatCost(-5000))
	assert.Equal(t, "5.00", FormatCost(5000))
	assert.Equal(t, "12.34", FormatCost(-12340))
	assert.Equal(t, "0.00", FormatCost(0))
}

func TestFormatMilliunits(t *testing.T) {
	assert.Equal(t, "-2.50", FormatMilliunits(-2500))
	assert.Equal(t, "1234.56", FormatMilliunits(1234560))
}

func TestFromMilliunits(t *testing.T) {
	assert.True(t, decimal.RequireFromString("-5.001").Equal(FromMilliunits(-5001)))
}

func TestFormatDollars(t *testing.T) {
	assert.Equal(t, "$12.50", FormatDollars(decimal.RequireFromString("12.5")))
}
