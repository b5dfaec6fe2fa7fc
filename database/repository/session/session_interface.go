package sessionRepo

import (
	"context"
	"time"

	"skillbridge/models"
)

// SessionRepository is the persistence boundary of the session store.
type SessionRepository interface {
	// Book inserts session unless an active session already holds its
	// mentor, date and slot, in which case it returns *models.SlotConflictError.
	// The check and the insert are atomic.
	Book(ctx context.Context, session *models.Session) error
	// GetByID returns *models.NotFoundError for unknown ids.
	GetByID(ctx context.Context, id string) (*models.Session, error)
	// ListFor returns the non-cancelled sessions of a mentor on date, oldest first.
	ListFor(ctx context.Context, mentorID, date string) ([]models.Session, error)
	// Transition moves a session to status. Moving to the current status is a no-op;
	// a disallowed move returns *models.ValidationError.
	Transition(ctx context.Context, id string, status models.SessionStatus, at time.Time) (*models.Session, error)
}

func conflictFor(s *models.Session) error {
	return &models.SlotConflictError{MentorID: s.MentorID, Date: s.Date, Slot: s.Slot}
}

func transitionError(from, to models.SessionStatus) error {
	return models.NewValidationError("status", "cannot move session from "+string(from)+" to "+string(to))
}
