// Package validation turns raw player text into validated lottery values.
// Every function is pure and stops at the first rule the input breaks.
package validation

import (
	"strconv"
	"strings"

	"lotto/domain/entities"
)

// NumberDelimiter separates winning numbers in player input
const NumberDelimiter = ","

// ValidateAmount parses a purchase amount.
// Rules in order: not blank, an integer, positive, a multiple of the ticket price.
func ValidateAmount(text string) (entities.PurchaseAmount, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return entities.PurchaseAmount{}, entities.NewValidationError(entities.KindAmountEmpty, text)
	}

	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return entities.PurchaseAmount{}, entities.NewValidationError(entities.KindAmountNotNumber, text)
	}
	if value <= 0 {
		return entities.PurchaseAmount{}, entities.NewValidationError(entities.KindAmountNegative, text)
	}
	if value%entities.TicketPrice != 0 {
		return entities.PurchaseAmount{}, entities.NewValidationError(entities.KindAmountInvalidUnit, text)
	}

	return entities.NewPurchaseAmount(value)
}

// ValidateWinningNumbers parses comma separated winning numbers.
// Rules in order: not blank, every token an integer, no duplicates, exactly six, all in range.
func ValidateWinningNumbers(text string) (entities.NumberSet, error) {
	if strings.TrimSpace(text) == "" {
		return entities.NumberSet{}, entities.NewValidationError(entities.KindWinningEmpty, text)
	}

	tokens := strings.Split(text, NumberDelimiter)
	numbers := make([]int, 0, len(tokens))
	for _, token := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			return entities.NumberSet{}, entities.NewValidationError(entities.KindWinningNotNumber, text)
		}
		numbers = append(numbers, n)
	}

	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if seen[n] {
			return entities.NumberSet{}, entities.NewValidationError(entities.KindWinningDuplicate, text)
		}
		seen[n] = true
	}

	if len(numbers) != entities.NumbersPerTicket {
		return entities.NumberSet{}, entities.NewValidationError(entities.KindWinningInvalidCount, text)
	}

	for _, n := range numbers {
		if !entities.InRange(n) {
			return entities.NumberSet{}, entities.NewValidationError(entities.KindWinningOutOfRange, text)
		}
	}

	return entities.NewNumberSet(numbers)
}

// ValidateBonusNumber parses the bonus number for an already validated winning set.
// Rules in order: not blank, an integer, in range, not one of the winning numbers.
func ValidateBonusNumber(text string, winning entities.NumberSet) (entities.BonusNumber, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, entities.NewValidationError(entities.KindBonusEmpty, text)
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, entities.NewValidationError(entities.KindBonusNotNumber, text)
	}
	if !entities.InRange(n) {
		return 0, entities.NewValidationError(entities.KindBonusOutOfRange, text)
	}
	if winning.Contains(n) {
		return 0, entities.NewValidationError(entities.KindBonusDuplicate, text)
	}

	return entities.NewBonusNumber(n, winning)
}
