package tasks

import (
	"encoding/json"
	"fmt"

	"skillbridge/models"

	"github.com/hibiken/asynq"
)

const TypeSendNotification = "notification:send"

func NewNotifyTask(payload models.NotificationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendNotification, b)
	return task, []asynq.Option{asynq.MaxRetry(5)}, nil
}

func ParseNotifyPayload(task *asynq.Task) (models.NotificationPayload, error) {
	var p models.NotificationPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid notification payload: %w", err)
	}
	return p, nil
}
