package cron

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillbridge/models"
	"skillbridge/services/notification"
	"skillbridge/services/tasks"
	"skillbridge/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// SessionLookup is what the reminder handler needs from the session store.
type SessionLookup interface {
	Get(ctx context.Context, sessionID string) (*models.Session, error)
}

// MentorLookup resolves mentor names for reminder text.
type MentorLookup interface {
	Get(ctx context.Context, id string) (*models.Mentor, error)
}

// NewServeMux registers the notification and reminder handlers.
func NewServeMux(delivery notification.Sink, sessions SessionLookup, mentors MentorLookup, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendNotification, handleNotificationTask(delivery, logger))
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(delivery, sessions, mentors, logger))
	return mux
}

// InitNotificationWorker runs the async worker in background until Shutdown is called on the returned server.
func InitNotificationWorker(redisOpt asynq.RedisClientOpt, mux *asynq.ServeMux, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	go func() {
		logger.Info("Starting notification worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Notification worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err),
			)
			if attempts == maxAttempts {
				logger.Error("Notification worker gave up; queued notifications will not be delivered")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func handleNotificationTask(delivery notification.Sink, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseNotifyPayload(task)
		if err != nil {
			logger.Error("Dropping notification task", zap.Error(err))
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
		delivery.Notify(utils.WithRequesterID(ctx, p.RequesterID), p.Kind, p.Message)
		return nil
	}
}

func handleReminderTask(delivery notification.Sink, sessions SessionLookup, mentors MentorLookup, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseReminderPayload(task)
		if err != nil {
			logger.Error("Dropping reminder task", zap.Error(err))
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}

		session, err := sessions.Get(ctx, p.SessionID)
		if err != nil {
			var nf *models.NotFoundError
			if errors.As(err, &nf) {
				logger.Info("Reminder skipped: session gone", zap.String("sessionId", p.SessionID))
				return nil
			}
			return err
		}
		if !session.Status.Active() {
			logger.Info("Reminder skipped: session no longer active",
				zap.String("sessionId", p.SessionID),
				zap.String("status", string(session.Status)),
			)
			return nil
		}

		mentorName := "your mentor"
		if m, err := mentors.Get(ctx, session.MentorID); err == nil {
			mentorName = m.Name
		}
		msg := fmt.Sprintf("Reminder: your %s with %s starts at %s on %s.",
			session.SessionType.Label(), mentorName, session.Slot, session.Date)
		delivery.Notify(utils.WithRequesterID(ctx, session.RequesterID), models.NotifySuccess, msg)
		return nil
	}
}
