package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"skillbridge/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "reminder:send"

// Enqueuer is the part of *asynq.Client the producers use.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ReminderTaskID keeps one pending reminder per session.
func ReminderTaskID(sessionID string) string {
	return "reminder-" + sessionID
}

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(ReminderTaskID(payload.SessionID)),
		asynq.MaxRetry(3),
	}
	return task, opts, nil
}

func ParseReminderPayload(task *asynq.Task) (models.ReminderPayload, error) {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid reminder payload: %w", err)
	}
	return p, nil
}

// ReminderScheduler enqueues a reminder Lead before each booked session starts.
type ReminderScheduler struct {
	Queue    Enqueuer
	Lead     time.Duration
	Location *time.Location
	Now      func() time.Time
	Logger   *zap.Logger
}

// ScheduleReminder is a no-op when the reminder time has already passed.
func (s *ReminderScheduler) ScheduleReminder(ctx context.Context, session models.Session) error {
	startsAt, err := models.StartsAt(session.Date, session.Slot, s.Location)
	if err != nil {
		return fmt.Errorf("reminder for session %s: %w", session.ID, err)
	}
	fireAt := startsAt.Add(-s.Lead)
	if !fireAt.After(s.now()) {
		return nil
	}

	task, opts, err := NewReminderTask(models.ReminderPayload{
		SessionID:   session.ID,
		MentorID:    session.MentorID,
		RequesterID: session.RequesterID,
		Date:        session.Date,
		Slot:        session.Slot,
		SessionType: session.SessionType,
	}, fireAt)
	if err != nil {
		return err
	}

	if _, err := s.Queue.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue reminder for session %s: %w", session.ID, err)
	}
	if s.Logger != nil {
		s.Logger.Debug("Reminder scheduled", zap.String("sessionId", session.ID), zap.Time("fireAt", fireAt))
	}
	return nil
}

func (s *ReminderScheduler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
