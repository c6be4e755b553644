package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/coworker-service/internal/events"
)

// CreationRecorder counts created coworkers.
type CreationRecorder interface {
	RecordCoworkerCreated()
}

// NotificationService reacts to domain events with logs and metrics.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	recorder   CreationRecorder
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, recorder CreationRecorder) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		recorder:   recorder,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventCoworkerCreated, n.handleCoworkerCreated)
}

func (n *NotificationService) handleCoworkerCreated(_ context.Context, event events.Event) error {
	n.logger.Info("CoworkerCreated", zap.String("coworker_id", event.CoworkerID), zap.Any("payload", event.Payload))
	if n.recorder != nil {
		n.recorder.RecordCoworkerCreated()
	}
	return nil
}
