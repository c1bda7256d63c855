package services

import (
	"errors"
	"fmt"

	"lotto/domain/entities"
	"lotto/domain/interfaces"
)

// GenerateTickets draws count independent tickets from source.
// Each ticket is six distinct numbers in range, stored ascending; tickets may repeat each other.
func GenerateTickets(count int, source interfaces.RandomSource) ([]entities.Ticket, error) {
	if count < 0 {
		return nil, fmt.Errorf("ticket count must not be negative: %d", count)
	}
	if source == nil {
		return nil, errors.New("random source is required")
	}

	tickets := make([]entities.Ticket, 0, count)
	for i := 0; i < count; i++ {
		numbers, err := source.PickUniqueNumbersInRange(entities.MinNumber, entities.MaxNumber, entities.NumbersPerTicket)
		if err != nil {
			return nil, fmt.Errorf("failed to draw numbers for ticket %d: %w", i+1, err)
		}

		set, err := entities.NewNumberSet(numbers)
		if err != nil {
			return nil, fmt.Errorf("random source returned an invalid ticket %v: %w", numbers, err)
		}
		tickets = append(tickets, entities.NewTicket(set))
	}

	return tickets, nil
}
