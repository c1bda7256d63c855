package entities

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	MinNumber        = 1
	MaxNumber        = 45
	NumbersPerTicket = 6
)

var (
	ErrNumberSetSize      = errors.New("number set must contain exactly 6 numbers")
	ErrNumberOutOfRange   = errors.New("number out of range")
	ErrNumberSetDuplicate = errors.New("number set contains duplicates")
)

// NumberSet is an ascending set of six distinct numbers in [MinNumber, MaxNumber].
// It is used for purchased tickets and for the winning numbers.
type NumberSet struct {
	numbers [NumbersPerTicket]int
}

// NewNumberSet validates numbers and stores them in ascending order
func NewNumberSet(numbers []int) (NumberSet, error) {
	if len(numbers) != NumbersPerTicket {
		return NumberSet{}, fmt.Errorf("%w: got %d", ErrNumberSetSize, len(numbers))
	}

	var set NumberSet
	seen := make(map[int]bool, NumbersPerTicket)
	for i, n := range numbers {
		if !InRange(n) {
			return NumberSet{}, fmt.Errorf("%w: %d", ErrNumberOutOfRange, n)
		}
		if seen[n] {
			return NumberSet{}, fmt.Errorf("%w: %d", ErrNumberSetDuplicate, n)
		}
		seen[n] = true
		set.numbers[i] = n
	}
	slices.Sort(set.numbers[:])

	return set, nil
}

// InRange reports whether n is a drawable lottery number
func InRange(n int) bool {
	return n >= MinNumber && n <= MaxNumber
}

// Numbers returns a copy of the numbers in ascending order
func (s NumberSet) Numbers() []int {
	out := make([]int, NumbersPerTicket)
	copy(out, s.numbers[:])
	return out
}

// Contains reports whether n is a member of the set
func (s NumberSet) Contains(n int) bool {
	_, found := slices.BinarySearch(s.numbers[:], n)
	return found
}

// MatchCount returns how many numbers the two sets share
func (s NumberSet) MatchCount(other NumberSet) int {
	// both sides are sorted, so a merge walk is enough
	count := 0
	i, j := 0, 0
	for i < NumbersPerTicket && j < NumbersPerTicket {
		switch {
		case s.numbers[i] == other.numbers[j]:
			count++
			i++
			j++
		case s.numbers[i] < other.numbers[j]:
			i++
		default:
			j++
		}
	}
	return count
}

// IsZero reports whether the set was never constructed
func (s NumberSet) IsZero() bool {
	return s.numbers[0] == 0
}

// String formats the set as "[1, 2, 3, 4, 5, 6]"
func (s NumberSet) String() string {
	parts := make([]string, NumbersPerTicket)
	for i, n := range s.numbers {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// BonusNumber is the extra number that separates the 5-match tiers.
// It never appears in the winning set it was validated against.
type BonusNumber int

// NewBonusNumber checks n against the range and the winning set
func NewBonusNumber(n int, winning NumberSet) (BonusNumber, error) {
	if !InRange(n) {
		return 0, fmt.Errorf("%w: %d", ErrNumberOutOfRange, n)
	}
	if winning.Contains(n) {
		return 0, fmt.Errorf("bonus number %d is already a winning number", n)
	}
	return BonusNumber(n), nil
}

// Int returns the bonus as a plain int
func (b BonusNumber) Int() int {
	return int(b)
}
