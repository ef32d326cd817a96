package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAmount_FloorDivision(t *testing.T) {
	cases := []struct {
		amount    int64
		split     int64
		remaining int64
	}{
		{-5000, -2500, -2500},
		{-5001, -2501, -2500},
		{5001, 2500, 2501},
		{5000, 2500, 2500},
		{-1, -1, 0},
		{1, 0, 1},
		{0, 0, 0},
	}

	for _, c := range cases {
		split, remaining := SplitAmount(c.amount)
		assert.Equal(t, c.split, split, "split of %d", c.amount)
		assert.Equal(t, c.remaining, remaining, "remaining of %d", c.amount)
	}
}

func TestSplitAmount_SumsToOriginal(t *testing.T) {
	for amount := int64(-10007); amount <= 10007; amount += 13 {
		split, remaining := SplitAmount(amount)
		assert.Equal(t, amount, split+remaining)
		assert.LessOrEqual(t, split, remaining, "floor puts the smaller half on the split side")
	}
}

func TestIsSplit(t *testing.T) {
	assert.False(t, Transaction{}.IsSplit())
	assert.True(t, Transaction{SubTransactions: []SubTransaction{{Amount: -1}}}.IsSplit())
}
