package models

// NotificationKind is the tone of a user-facing notification.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// NotificationPayload is the queued form of a notification.
type NotificationPayload struct {
	Kind        NotificationKind `json:"kind"`
	Message     string           `json:"message"`
	RequesterID string           `json:"requesterId,omitempty"`
}

// ReminderPayload identifies the session a reminder fires for.
type ReminderPayload struct {
	SessionID   string      `json:"sessionId"`
	MentorID    string      `json:"mentorId"`
	RequesterID string      `json:"requesterId"`
	Date        string      `json:"date"`
	Slot        Slot        `json:"slot"`
	SessionType SessionType `json:"sessionType"`
}
