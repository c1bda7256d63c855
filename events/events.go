package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeTicketsPurchased EventType = "tickets_purchased"
	EventTypeDrawSettled      EventType = "draw_settled"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// TicketsPurchasedEvent is emitted once a purchase amount has been turned into tickets
type TicketsPurchasedEvent struct {
	RunID       string  `json:"run_id"`
	Amount      int64   `json:"amount"`
	TicketCount int     `json:"ticket_count"`
	Tickets     [][]int `json:"tickets"`
}

func (e TicketsPurchasedEvent) Type() EventType {
	return EventTypeTicketsPurchased
}

// DrawSettledEvent is emitted after every ticket has been scored
type DrawSettledEvent struct {
	RunID          string         `json:"run_id"`
	WinningNumbers []int          `json:"winning_numbers"`
	BonusNumber    int            `json:"bonus_number"`
	Tally          map[string]int `json:"tally"`
	TotalWinnings  int64          `json:"total_winnings"`
	AmountSpent    int64          `json:"amount_spent"`
	ProfitRate     string         `json:"profit_rate"`
}

func (e DrawSettledEvent) Type() EventType {
	return EventTypeDrawSettled
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching inside the process
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit delivers an event to every registered handler in subscription order.
// A panicking handler is logged and does not stop the others.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event to handlers")

	for i, handler := range handlers {
		b.call(ctx, handler, i, event)
	}
}

func (b *Bus) call(ctx context.Context, h Handler, handlerIndex int, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{
				"eventType":    event.Type(),
				"handlerIndex": handlerIndex,
				"panic":        r,
			}).Error("Event handler panicked")
		}
	}()
	h(ctx, event)
}

// Publish emits the event locally; it satisfies the domain EventPublisher interface
func (b *Bus) Publish(event Event) error {
	b.Emit(context.Background(), event)
	return nil
}
