package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/workout-service/internal/events"
)

func TestRegisterSubscribesAllEventTypes(t *testing.T) {
	dispatcher := newCountingDispatcher()
	w := NewActivityWorker(nil, zap.NewNop())

	w.Register(dispatcher)
	assert.Equal(t, len(events.AllEventTypes), dispatcher.subscriptions)
}

func TestRecordWithoutClientNoOps(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	w := NewActivityWorker(nil, zap.NewNop())
	w.Register(dispatcher)

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:   "evt-1",
		Type: events.EventWorkoutCreated,
	})
	require.NoError(t, err)
}

type countingDispatcher struct {
	subscriptions int
}

func newCountingDispatcher() *countingDispatcher {
	return &countingDispatcher{}
}

func (d *countingDispatcher) Publish(context.Context, events.Event) error {
	return nil
}

func (d *countingDispatcher) Subscribe(events.EventType, events.EventHandler) {
	d.subscriptions++
}
