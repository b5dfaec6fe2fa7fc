package notification

import (
	"context"

	"skillbridge/models"
	"skillbridge/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// messageSender is the part of *messaging.Client the sink uses.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMSink pushes notifications to the requester's device topic.
type FCMSink struct {
	client messageSender
	logger *zap.Logger
}

func NewFCMSink(client messageSender, logger *zap.Logger) *FCMSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FCMSink{client: client, logger: logger}
}

// RequesterTopic is the FCM topic a requester's devices subscribe to.
func RequesterTopic(requesterID string) string {
	return "requester-" + requesterID
}

func (s *FCMSink) Notify(ctx context.Context, kind models.NotificationKind, message string) {
	requesterID := utils.RequesterIDFromContext(ctx)
	if requesterID == "" {
		s.logger.Debug("FCM push skipped: no requester in context", zap.String("kind", string(kind)))
		return
	}

	title := "Session booked"
	if kind == models.NotifyError {
		title = "Booking failed"
	}

	msg := &messaging.Message{
		Topic: RequesterTopic(requesterID),
		Notification: &messaging.Notification{
			Title: title,
			Body:  message,
		},
		Data: map[string]string{
			"type": "booking",
			"kind": string(kind),
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}

	id, err := s.client.Send(ctx, msg)
	if err != nil {
		s.logger.Error("FCM push failed",
			zap.String("requesterId", requesterID),
			zap.Error(err),
		)
		return
	}
	s.logger.Debug("FCM push sent", zap.String("messageId", id), zap.String("requesterId", requesterID))
}
