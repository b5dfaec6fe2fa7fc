package notification

import (
	"context"

	"skillbridge/models"
	"skillbridge/services/tasks"
	"skillbridge/utils"

	"go.uber.org/zap"
)

// QueueSink hands notifications to the task queue for asynchronous delivery.
type QueueSink struct {
	queue  tasks.Enqueuer
	logger *zap.Logger
}

func NewQueueSink(queue tasks.Enqueuer, logger *zap.Logger) *QueueSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueueSink{queue: queue, logger: logger}
}

func (s *QueueSink) Notify(ctx context.Context, kind models.NotificationKind, message string) {
	payload := models.NotificationPayload{
		Kind:        kind,
		Message:     message,
		RequesterID: utils.RequesterIDFromContext(ctx),
	}
	task, opts, err := tasks.NewNotifyTask(payload)
	if err != nil {
		s.logger.Error("Failed to build notification task", zap.Error(err))
		return
	}
	info, err := s.queue.EnqueueContext(ctx, task, opts...)
	if err != nil {
		s.logger.Error("Failed to enqueue notification",
			zap.String("requesterId", payload.RequesterID),
			zap.Error(err),
		)
		return
	}
	s.logger.Debug("Notification enqueued", zap.String("taskId", info.ID))
}
