package entities

import "fmt"

// TicketPrice is the cost of one ticket; purchase amounts are multiples of it
const TicketPrice int64 = 1000

// PurchaseAmount is a validated, positive multiple of TicketPrice
type PurchaseAmount struct {
	value int64
}

// NewPurchaseAmount wraps an amount that already satisfies the purchase rules
func NewPurchaseAmount(value int64) (PurchaseAmount, error) {
	if value <= 0 || value%TicketPrice != 0 {
		return PurchaseAmount{}, fmt.Errorf("invalid purchase amount %d", value)
	}
	return PurchaseAmount{value: value}, nil
}

// Value returns the amount spent
func (a PurchaseAmount) Value() int64 {
	return a.value
}

// TicketCount returns how many tickets the amount buys
func (a PurchaseAmount) TicketCount() int {
	return int(a.value / TicketPrice)
}

// Ticket is one purchased set of numbers
type Ticket struct {
	numbers NumberSet
}

// NewTicket creates a ticket from a validated number set
func NewTicket(numbers NumberSet) Ticket {
	return Ticket{numbers: numbers}
}

// Numbers returns the ticket's number set
func (t Ticket) Numbers() NumberSet {
	return t.numbers
}

// String formats the ticket like its number set
func (t Ticket) String() string {
	return t.numbers.String()
}
