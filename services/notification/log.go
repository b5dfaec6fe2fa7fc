package notification

import (
	"context"

	"skillbridge/models"
	"skillbridge/utils"

	"go.uber.org/zap"
)

// LogSink writes notifications to the structured log.
type LogSink struct {
	Logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{Logger: logger}
}

func (s *LogSink) Notify(ctx context.Context, kind models.NotificationKind, message string) {
	fields := []zap.Field{
		zap.String("kind", string(kind)),
		zap.String("message", message),
		zap.String("requesterId", utils.RequesterIDFromContext(ctx)),
	}
	if kind == models.NotifyError {
		s.Logger.Warn("Booking notification", fields...)
		return
	}
	s.Logger.Info("Booking notification", fields...)
}
