package entities

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which input rule a value violated
type ErrorKind string

const (
	KindAmountEmpty         ErrorKind = "AMOUNT_EMPTY"
	KindAmountNotNumber     ErrorKind = "AMOUNT_NOT_NUMBER"
	KindAmountNegative      ErrorKind = "AMOUNT_NEGATIVE"
	KindAmountInvalidUnit   ErrorKind = "AMOUNT_INVALID_UNIT"
	KindAmountLimitExceeded ErrorKind = "AMOUNT_LIMIT_EXCEEDED"

	KindWinningEmpty        ErrorKind = "WINNING_EMPTY"
	KindWinningNotNumber    ErrorKind = "WINNING_NOT_NUMBER"
	KindWinningDuplicate    ErrorKind = "WINNING_DUPLICATE"
	KindWinningInvalidCount ErrorKind = "WINNING_INVALID_COUNT"
	KindWinningOutOfRange   ErrorKind = "WINNING_OUT_OF_RANGE"

	KindBonusEmpty      ErrorKind = "BONUS_EMPTY"
	KindBonusNotNumber  ErrorKind = "BONUS_NOT_NUMBER"
	KindBonusOutOfRange ErrorKind = "BONUS_OUT_OF_RANGE"
	KindBonusDuplicate  ErrorKind = "BONUS_DUPLICATE"
)

// ErrorPrefix marks every message shown to the player for rejected input
const ErrorPrefix = "[ERROR]"

var kindMessages = map[ErrorKind]string{
	KindAmountEmpty:         "The purchase amount is required.",
	KindAmountNotNumber:     "The purchase amount must be a number.",
	KindAmountNegative:      "The purchase amount must be greater than zero.",
	KindAmountInvalidUnit:   fmt.Sprintf("The purchase amount must be a multiple of %d.", TicketPrice),
	KindAmountLimitExceeded: "The purchase amount exceeds the ticket limit for one draw.",

	KindWinningEmpty:        "Winning numbers are required.",
	KindWinningNotNumber:    "Winning numbers must be comma-separated numbers.",
	KindWinningDuplicate:    "Winning numbers must not contain duplicates.",
	KindWinningInvalidCount: fmt.Sprintf("Exactly %d winning numbers are required.", NumbersPerTicket),
	KindWinningOutOfRange:   fmt.Sprintf("Winning numbers must be between %d and %d.", MinNumber, MaxNumber),

	KindBonusEmpty:      "The bonus number is required.",
	KindBonusNotNumber:  "The bonus number must be a number.",
	KindBonusOutOfRange: fmt.Sprintf("The bonus number must be between %d and %d.", MinNumber, MaxNumber),
	KindBonusDuplicate:  "The bonus number must not be one of the winning numbers.",
}

// ValidationError reports rejected player input together with the rule it broke
type ValidationError struct {
	Kind  ErrorKind
	Input string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	msg, ok := kindMessages[e.Kind]
	if !ok {
		msg = string(e.Kind)
	}
	return fmt.Sprintf("%s %s", ErrorPrefix, msg)
}

// Is matches any ValidationError of the same kind, so sentinels work with errors.Is
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewValidationError creates a validation error for the given input
func NewValidationError(kind ErrorKind, input string) *ValidationError {
	return &ValidationError{Kind: kind, Input: input}
}

// Sentinels for errors.Is comparisons
var (
	ErrAmountEmpty         = &ValidationError{Kind: KindAmountEmpty}
	ErrAmountNotNumber     = &ValidationError{Kind: KindAmountNotNumber}
	ErrAmountNegative      = &ValidationError{Kind: KindAmountNegative}
	ErrAmountInvalidUnit   = &ValidationError{Kind: KindAmountInvalidUnit}
	ErrAmountLimitExceeded = &ValidationError{Kind: KindAmountLimitExceeded}

	ErrWinningEmpty        = &ValidationError{Kind: KindWinningEmpty}
	ErrWinningNotNumber    = &ValidationError{Kind: KindWinningNotNumber}
	ErrWinningDuplicate    = &ValidationError{Kind: KindWinningDuplicate}
	ErrWinningInvalidCount = &ValidationError{Kind: KindWinningInvalidCount}
	ErrWinningOutOfRange   = &ValidationError{Kind: KindWinningOutOfRange}

	ErrBonusEmpty      = &ValidationError{Kind: KindBonusEmpty}
	ErrBonusNotNumber  = &ValidationError{Kind: KindBonusNotNumber}
	ErrBonusOutOfRange = &ValidationError{Kind: KindBonusOutOfRange}
	ErrBonusDuplicate  = &ValidationError{Kind: KindBonusDuplicate}
)

// KindOf returns the validation kind carried by err, or "" if err is not a ValidationError
func KindOf(err error) ErrorKind {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Kind
	}
	return ""
}

// IsValidationError reports whether err was caused by rejected player input
func IsValidationError(err error) bool {
	return KindOf(err) != ""
}
