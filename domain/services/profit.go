package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProfitRatePlaces is the number of decimal places kept in a profit rate
const ProfitRatePlaces = 1

var hundred = decimal.NewFromInt(100)

// ProfitRate returns totalWinnings / amountSpent * 100, rounded half up to one decimal place
func ProfitRate(totalWinnings, amountSpent int64) (decimal.Decimal, error) {
	if amountSpent <= 0 {
		return decimal.Zero, fmt.Errorf("amount spent must be positive, got %d", amountSpent)
	}
	if totalWinnings < 0 {
		return decimal.Zero, fmt.Errorf("total winnings must not be negative, got %d", totalWinnings)
	}

	rate := decimal.NewFromInt(totalWinnings).
		Mul(hundred).
		Div(decimal.NewFromInt(amountSpent))

	return rate.Round(ProfitRatePlaces), nil
}
