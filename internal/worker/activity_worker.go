package worker

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/workout-service/internal/events"
)

const (
	activityKey = "activity:recent"
	activityCap = 100
)

// ActivityWorker records domain events into a capped Redis list used
// as a recent-activity audit trail. Recording failures are logged and
// never surfaced to the request that published the event.
type ActivityWorker struct {
	client *redis.Client
	logger *zap.Logger
}

// NewActivityWorker constructs the worker.
func NewActivityWorker(client *redis.Client, logger *zap.Logger) *ActivityWorker {
	return &ActivityWorker{client: client, logger: logger}
}

// Register subscribes the worker to every event type.
func (w *ActivityWorker) Register(dispatcher events.Dispatcher) {
	if w == nil || dispatcher == nil {
		return
	}
	for _, eventType := range events.AllEventTypes {
		dispatcher.Subscribe(eventType, w.record)
	}
}

func (w *ActivityWorker) record(ctx context.Context, event events.Event) error {
	if w.client == nil {
		return nil
	}

	entry, err := json.Marshal(event)
	if err != nil {
		w.logger.Warn("encode activity entry", zap.Error(err))
		return err
	}

	pipe := w.client.Pipeline()
	pipe.LPush(ctx, activityKey, entry)
	pipe.LTrim(ctx, activityKey, 0, activityCap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		w.logger.Warn("record activity", zap.Error(err), zap.String("event", string(event.Type)))
		return err
	}
	return nil
}

// Recent returns up to limit most recent activity entries.
func (w *ActivityWorker) Recent(ctx context.Context, limit int64) ([]events.Event, error) {
	if limit <= 0 || limit > activityCap {
		limit = activityCap
	}
	raw, err := w.client.LRange(ctx, activityKey, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]events.Event, 0, len(raw))
	for _, item := range raw {
		var event events.Event
		if err := json.Unmarshal([]byte(item), &event); err != nil {
			continue
		}
		entries = append(entries, event)
	}
	return entries, nil
}
