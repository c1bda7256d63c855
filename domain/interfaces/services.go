package interfaces

import (
	"context"

	"lotto/domain/entities"
	"lotto/events"

	"github.com/shopspring/decimal"
)

// RandomSource picks numbers for generated tickets.
// Implementations return count distinct integers in [min, max], in any order.
type RandomSource interface {
	PickUniqueNumbersInRange(min, max, count int) ([]int, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event) error
}

// PurchaseResult is the batch of tickets bought in one run
type PurchaseResult struct {
	RunID   string
	Amount  entities.PurchaseAmount
	Tickets []entities.Ticket
}

// DrawResult is the scored outcome of a purchase against the winning numbers
type DrawResult struct {
	RunID          string
	WinningNumbers entities.NumberSet
	BonusNumber    entities.BonusNumber
	Ranks          []entities.Rank
	Tally          entities.ResultTally
	TotalWinnings  int64
	ProfitRate     decimal.Decimal
}

// LotteryService runs the purchase and settlement steps of one draw
type LotteryService interface {
	// Purchase validates the amount text and generates one ticket per unit spent
	Purchase(ctx context.Context, amountText string) (*PurchaseResult, error)

	// Settle scores every purchased ticket and computes winnings and profit rate
	Settle(ctx context.Context, purchase *PurchaseResult, winning entities.NumberSet, bonus entities.BonusNumber) (*DrawResult, error)
}
