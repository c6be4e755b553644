package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/coworker-service/internal/events"
	"github.com/spec-kit/coworker-service/internal/service"
)

// StartNotificationWorker wires the notification handlers onto the dispatcher.
func StartNotificationWorker(dispatcher events.Dispatcher, logger *zap.Logger, recorder service.CreationRecorder) *service.NotificationService {
	if dispatcher == nil {
		return nil
	}
	notifications := service.NewNotificationService(dispatcher, logger.Named("notifications"), recorder)
	notifications.RegisterHandlers()
	return notifications
}
