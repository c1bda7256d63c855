package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"lotto/domain/interfaces"
	"lotto/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var _ interfaces.EventPublisher = (*NATSEventPublisher)(nil)

type mockMessagePublisher struct {
	mock.Mock
}

func (m *mockMessagePublisher) Publish(ctx context.Context, subject string, data []byte) error {
	args := m.Called(ctx, subject, data)
	return args.Error(0)
}

func TestNATSEventPublisher_PublishesEnvelope(t *testing.T) {
	t.Parallel()

	client := new(mockMessagePublisher)
	var published []byte
	client.On("Publish", mock.Anything, "lotto.draw.settled", mock.Anything).Run(func(args mock.Arguments) {
		published = args.Get(2).([]byte)
	}).Return(nil)

	bus := events.NewBus()
	var localEvents []events.Event
	bus.Subscribe(events.EventTypeDrawSettled, func(ctx context.Context, event events.Event) {
		localEvents = append(localEvents, event)
	})

	publisher := NewNATSEventPublisher(client, NewEventSubjectMapper(), bus)
	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	publisher.now = func() time.Time { return fixed }

	event := events.DrawSettledEvent{RunID: "run-1", TotalWinnings: 5000, AmountSpent: 8000, ProfitRate: "62.5"}
	require.NoError(t, publisher.Publish(event))

	client.AssertExpectations(t)
	require.Len(t, localEvents, 1)

	var envelope EventEnvelope
	require.NoError(t, json.Unmarshal(published, &envelope))
	assert.NotEmpty(t, envelope.EventID)
	assert.Equal(t, "draw_settled", envelope.EventType)
	assert.Equal(t, "lotto", envelope.SourceService)
	assert.True(t, fixed.Equal(envelope.Timestamp))

	var payload events.DrawSettledEvent
	require.NoError(t, json.Unmarshal(envelope.Payload, &payload))
	assert.Equal(t, event.RunID, payload.RunID)
	assert.Equal(t, event.ProfitRate, payload.ProfitRate)
}

func TestNATSEventPublisher_ClientError(t *testing.T) {
	t.Parallel()

	client := new(mockMessagePublisher)
	client.On("Publish", mock.Anything, "lotto.tickets.purchased", mock.Anything).Return(errors.New("no responders"))

	publisher := NewNATSEventPublisher(client, NewEventSubjectMapper(), nil)

	err := publisher.Publish(events.TicketsPurchasedEvent{RunID: "run-2"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no responders")
}

func TestNATSClient_NotConnected(t *testing.T) {
	t.Parallel()

	client := NewNATSClient("nats://127.0.0.1:4222")

	assert.False(t, client.IsConnected())
	assert.Error(t, client.Publish(context.Background(), "lotto.draw.settled", []byte("{}")))
	assert.Error(t, EnsureEventStream(client, NewEventSubjectMapper()))
	assert.NoError(t, client.Close())
}
