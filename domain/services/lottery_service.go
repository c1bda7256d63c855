package services

import (
	"context"
	"errors"
	"fmt"

	"lotto/domain/entities"
	"lotto/domain/interfaces"
	"lotto/domain/validation"
	"lotto/events"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// lotteryService implements business logic for one purchase-and-payout cycle
type lotteryService struct {
	randomSource   interfaces.RandomSource
	eventPublisher interfaces.EventPublisher
	maxTickets     int
}

// NewLotteryService creates a new lottery service.
// maxTickets caps a single purchase; zero or less means no cap.
func NewLotteryService(
	randomSource interfaces.RandomSource,
	eventPublisher interfaces.EventPublisher,
	maxTickets int,
) interfaces.LotteryService {
	return &lotteryService{
		randomSource:   randomSource,
		eventPublisher: eventPublisher,
		maxTickets:     maxTickets,
	}
}

// Purchase validates the amount and generates the tickets it pays for
func (s *lotteryService) Purchase(ctx context.Context, amountText string) (*interfaces.PurchaseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	amount, err := validation.ValidateAmount(amountText)
	if err != nil {
		return nil, err
	}

	count := amount.TicketCount()
	if s.maxTickets > 0 && count > s.maxTickets {
		return nil, entities.NewValidationError(entities.KindAmountLimitExceeded, amountText)
	}

	tickets, err := GenerateTickets(count, s.randomSource)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tickets: %w", err)
	}

	result := &interfaces.PurchaseResult{
		RunID:   uuid.New().String(),
		Amount:  amount,
		Tickets: tickets,
	}

	log.WithFields(log.Fields{
		"runID":       result.RunID,
		"amount":      amount.Value(),
		"ticketCount": count,
	}).Info("Tickets purchased")

	numbers := make([][]int, len(tickets))
	for i, ticket := range tickets {
		numbers[i] = ticket.Numbers().Numbers()
	}
	s.publish(events.TicketsPurchasedEvent{
		RunID:       result.RunID,
		Amount:      amount.Value(),
		TicketCount: count,
		Tickets:     numbers,
	})

	return result, nil
}

// Settle scores the purchase against the winning numbers and bonus
func (s *lotteryService) Settle(
	ctx context.Context,
	purchase *interfaces.PurchaseResult,
	winning entities.NumberSet,
	bonus entities.BonusNumber,
) (*interfaces.DrawResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, errors.New("purchase is required")
	}
	if winning.IsZero() {
		return nil, errors.New("winning numbers are required")
	}
	if winning.Contains(bonus.Int()) || !entities.InRange(bonus.Int()) {
		return nil, fmt.Errorf("bonus number %d is not valid for winning numbers %s", bonus, winning)
	}

	ranks := RankTickets(purchase.Tickets, winning, bonus)
	total := TotalWinnings(ranks)

	rate, err := ProfitRate(total, purchase.Amount.Value())
	if err != nil {
		return nil, fmt.Errorf("failed to calculate profit rate: %w", err)
	}

	result := &interfaces.DrawResult{
		RunID:          purchase.RunID,
		WinningNumbers: winning,
		BonusNumber:    bonus,
		Ranks:          ranks,
		Tally:          Tally(ranks),
		TotalWinnings:  total,
		ProfitRate:     rate,
	}

	log.WithFields(log.Fields{
		"runID":          result.RunID,
		"winningTickets": result.Tally.Total(),
		"totalWinnings":  total,
		"profitRate":     rate.String(),
	}).Info("Draw settled")

	tally := make(map[string]int, len(entities.PrizeRanks()))
	for _, r := range entities.PrizeRanks() {
		tally[r.String()] = result.Tally.Count(r)
	}
	s.publish(events.DrawSettledEvent{
		RunID:          result.RunID,
		WinningNumbers: winning.Numbers(),
		BonusNumber:    bonus.Int(),
		Tally:          tally,
		TotalWinnings:  total,
		AmountSpent:    purchase.Amount.Value(),
		ProfitRate:     rate.StringFixed(ProfitRatePlaces),
	})

	return result, nil
}

// publish hands the event to the publisher; failures are logged, never returned
func (s *lotteryService) publish(event events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(event); err != nil {
		log.WithError(err).WithField("eventType", event.Type()).Warn("failed to publish event")
	}
}
