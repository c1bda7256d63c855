package infrastructure

import (
	"fmt"

	"lotto/events"
)

const (
	subjectTicketsPurchased = "lotto.tickets.purchased"
	subjectDrawSettled      = "lotto.draw.settled"
)

// EventSubjectMapper handles mapping between domain events and NATS subjects
type EventSubjectMapper struct{}

// NewEventSubjectMapper creates a new event subject mapper
func NewEventSubjectMapper() *EventSubjectMapper {
	return &EventSubjectMapper{}
}

// MapEventToSubject converts a domain event to its corresponding NATS subject
func (m *EventSubjectMapper) MapEventToSubject(event events.Event) string {
	switch event.Type() {
	case events.EventTypeTicketsPurchased:
		return subjectTicketsPurchased
	case events.EventTypeDrawSettled:
		return subjectDrawSettled
	default:
		return fmt.Sprintf("lotto.unknown.%s", event.Type())
	}
}

// MapSubjectToEventType converts a NATS subject back to an event type
func (m *EventSubjectMapper) MapSubjectToEventType(subject string) events.EventType {
	switch subject {
	case subjectTicketsPurchased:
		return events.EventTypeTicketsPurchased
	case subjectDrawSettled:
		return events.EventTypeDrawSettled
	default:
		return events.EventType(subject)
	}
}

// GetAllSubjects returns all subjects that this service publishes to
func (m *EventSubjectMapper) GetAllSubjects() []string {
	return []string{
		subjectTicketsPurchased,
		subjectDrawSettled,
	}
}
