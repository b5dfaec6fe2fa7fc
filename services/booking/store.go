package booking

import (
	"context"
	"sync"
	"time"

	sessionRepo "skillbridge/database/repository/session"
	"skillbridge/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionStore is the durable record of booked sessions.
type SessionStore interface {
	Book(ctx context.Context, req models.BookRequest) (*models.Session, error)
	Cancel(ctx context.Context, sessionID string) (*models.Session, error)
	ListFor(ctx context.Context, mentorID, date string) ([]models.Session, error)
	OpenSlots(ctx context.Context, mentorID, date string) ([]models.Slot, error)
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	UpdateStatus(ctx context.Context, sessionID string, status models.SessionStatus) (*models.Session, error)
}

// MentorDirectory is what the store needs from the mentor directory.
type MentorDirectory interface {
	Get(ctx context.Context, id string) (*models.Mentor, error)
	UpdateAvailability(ctx context.Context, id string, availability models.Availability) error
}

// ReminderScheduler queues a reminder ahead of a booked session.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, session models.Session) error
}

// DefaultSessionStore checks requests, books through the repository and keeps
// mentor availability in step with the bookings.
type DefaultSessionStore struct {
	Repo      sessionRepo.SessionRepository
	Mentors   MentorDirectory
	Reminders ReminderScheduler // optional
	Clock     func() time.Time
	Logger    *zap.Logger

	refreshLocks sync.Map // mentor id -> *sync.Mutex
}

var _ SessionStore = (*DefaultSessionStore)(nil)

func NewSessionStore(repo sessionRepo.SessionRepository, mentors MentorDirectory, logger *zap.Logger) *DefaultSessionStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultSessionStore{Repo: repo, Mentors: mentors, Clock: time.Now, Logger: logger}
}

// Book creates a pending session. It fails with *models.SlotConflictError
// when an active session already holds the mentor's slot on that date.
func (s *DefaultSessionStore) Book(ctx context.Context, req models.BookRequest) (*models.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.Mentors.Get(ctx, req.MentorID); err != nil {
		return nil, err
	}

	now := s.now()
	session := &models.Session{
		ID:          uuid.New().String(),
		MentorID:    req.MentorID,
		RequesterID: req.RequesterID,
		Date:        req.Date,
		Slot:        req.Slot,
		SessionType: req.SessionType,
		Notes:       req.Notes,
		CreatedAt:   now,
	}
	session.SetStatus(models.StatusPending, now)

	if err := s.Repo.Book(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("Session booked",
		zap.String("sessionId", session.ID),
		zap.String("mentorId", session.MentorID),
		zap.String("date", session.Date),
		zap.String("slot", string(session.Slot)),
	)

	s.refreshAvailability(ctx, session.MentorID, session.Date)
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, *session); err != nil {
			s.Logger.Warn("Failed to schedule reminder", zap.String("sessionId", session.ID), zap.Error(err))
		}
	}
	return session, nil
}

// Cancel is idempotent for sessions that are already cancelled.
func (s *DefaultSessionStore) Cancel(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.UpdateStatus(ctx, sessionID, models.StatusCancelled)
}

func (s *DefaultSessionStore) UpdateStatus(ctx context.Context, sessionID string, status models.SessionStatus) (*models.Session, error) {
	if !status.Valid() {
		return nil, models.NewValidationError("status", "unknown session status "+string(status))
	}
	before, err := s.Repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	after, err := s.Repo.Transition(ctx, sessionID, status, s.now())
	if err != nil {
		return nil, err
	}
	if before.Status != after.Status {
		s.Logger.Info("Session status changed",
			zap.String("sessionId", sessionID),
			zap.String("from", string(before.Status)),
			zap.String("to", string(after.Status)),
		)
		if before.Status.Active() && !after.Status.Active() {
			s.refreshAvailability(ctx, after.MentorID, after.Date)
		}
	}
	return after, nil
}

func (s *DefaultSessionStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.Repo.GetByID(ctx, sessionID)
}

// ListFor returns the mentor's non-cancelled sessions on date.
func (s *DefaultSessionStore) ListFor(ctx context.Context, mentorID, date string) ([]models.Session, error) {
	if _, err := models.ParseDate(date, time.UTC); err != nil {
		return nil, models.NewValidationError("date", "date must be formatted YYYY-MM-DD")
	}
	if _, err := s.Mentors.Get(ctx, mentorID); err != nil {
		return nil, err
	}
	return s.Repo.ListFor(ctx, mentorID, date)
}

// OpenSlots returns the slots on date not held by an active session.
func (s *DefaultSessionStore) OpenSlots(ctx context.Context, mentorID, date string) ([]models.Slot, error) {
	sessions, err := s.ListFor(ctx, mentorID, date)
	if err != nil {
		return nil, err
	}
	return openSlots(sessions), nil
}

// refreshAvailability recomputes the mentor's availability for date. Refreshes
// for one mentor run one at a time, so the last write always reflects every
// booking that finished before it started.
func (s *DefaultSessionStore) refreshAvailability(ctx context.Context, mentorID, date string) {
	mu := s.refreshLock(mentorID)
	mu.Lock()
	defer mu.Unlock()

	sessions, err := s.Repo.ListFor(ctx, mentorID, date)
	if err != nil {
		s.Logger.Warn("Failed to load sessions for availability", zap.String("mentorId", mentorID), zap.Error(err))
		return
	}
	now := s.now()
	availability := models.NewAvailability(date, openSlots(sessions), now.Format(models.DateLayout), now)
	if err := s.Mentors.UpdateAvailability(ctx, mentorID, availability); err != nil {
		s.Logger.Warn("Failed to update mentor availability", zap.String("mentorId", mentorID), zap.Error(err))
	}
}

func (s *DefaultSessionStore) refreshLock(mentorID string) *sync.Mutex {
	mu, _ := s.refreshLocks.LoadOrStore(mentorID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *DefaultSessionStore) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func openSlots(sessions []models.Session) []models.Slot {
	taken := make([]models.Slot, 0, len(sessions))
	for _, sess := range sessions {
		if sess.Status.Active() {
			taken = append(taken, sess.Slot)
		}
	}
	return models.OpenSlots(taken)
}
