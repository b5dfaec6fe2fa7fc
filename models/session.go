package models

import "time"

// SessionType is how a mentoring session is held.
type SessionType string

const (
	SessionVideo SessionType = "video"
	SessionAudio SessionType = "audio"
	SessionChat  SessionType = "chat"
)

var sessionTypeLabels = map[SessionType]string{
	SessionVideo: "Video Call",
	SessionAudio: "Audio Call",
	SessionChat:  "Chat",
}

func (t SessionType) Valid() bool {
	_, ok := sessionTypeLabels[t]
	return ok
}

// Label is the display name shown to users, e.g. "Video Call".
func (t SessionType) Label() string {
	if l, ok := sessionTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

type SessionStatus string

const (
	StatusPending   SessionStatus = "pending"
	StatusConfirmed SessionStatus = "confirmed"
	StatusCancelled SessionStatus = "cancelled"
	StatusCompleted SessionStatus = "completed"
)

var statusTransitions = map[SessionStatus][]SessionStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

func (s SessionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Active reports whether the status holds its slot.
func (s SessionStatus) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo reports whether s may move to next. Staying put is always allowed.
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Session is a booked mentoring session.
type Session struct {
	ID          string        `bson:"id" json:"id"`
	MentorID    string        `bson:"mentor_id" json:"mentorId"`
	RequesterID string        `bson:"requester_id" json:"requesterId"`
	Date        string        `bson:"date" json:"date"` // YYYY-MM-DD
	Slot        Slot          `bson:"slot" json:"slot"`
	SessionType SessionType   `bson:"session_type" json:"sessionType"`
	Notes       string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Status      SessionStatus `bson:"status" json:"status"`
	Active      bool          `bson:"active" json:"-"` // mirrors Status.Active() for the partial unique index
	CreatedAt   time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updatedAt"`
}

// SetStatus updates the status and the derived active flag.
func (s *Session) SetStatus(status SessionStatus, at time.Time) {
	s.Status = status
	s.Active = status.Active()
	s.UpdatedAt = at
}

// BookRequest carries everything needed to create a Session.
type BookRequest struct {
	MentorID    string      `json:"mentorId"`
	RequesterID string      `json:"requesterId"`
	Date        string      `json:"date"`
	Slot        Slot        `json:"slot"`
	SessionType SessionType `json:"sessionType"`
	Notes       string      `json:"notes,omitempty"`
}

// Validate checks the request shape. It does not check the mentor or the date's age.
func (r BookRequest) Validate() error {
	switch {
	case r.MentorID == "":
		return NewValidationError("mentorId", "mentor is required")
	case r.RequesterID == "":
		return NewValidationError("requesterId", "requester is required")
	case !r.SessionType.Valid():
		return NewValidationError("sessionType", "unknown session type "+string(r.SessionType))
	case !r.Slot.Valid():
		return NewValidationError("slot", "unknown time slot "+string(r.Slot))
	}
	if _, err := ParseDate(r.Date, time.UTC); err != nil {
		return NewValidationError("date", "date must be formatted YYYY-MM-DD")
	}
	return nil
}
