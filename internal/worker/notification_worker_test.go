package worker

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/coworker-service/internal/events"
)

type countingRecorder struct{ n int }

func (c *countingRecorder) RecordCoworkerCreated() { c.n++ }

func TestStartNotificationWorkerRecordsCreations(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher(nil)
	rec := &countingRecorder{}
	if StartNotificationWorker(dispatcher, zap.NewNop(), rec) == nil {
		t.Fatalf("expected notification service")
	}

	_ = dispatcher.Publish(context.Background(), events.Event{Type: events.EventCoworkerCreated, CoworkerID: "c1"})
	if rec.n != 1 {
		t.Fatalf("expected one recorded creation, got %d", rec.n)
	}
}

func TestStartNotificationWorkerWithoutDispatcher(t *testing.T) {
	if StartNotificationWorker(nil, zap.NewNop(), nil) != nil {
		t.Fatalf("expected nil service without dispatcher")
	}
}
