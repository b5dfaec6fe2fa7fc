package booking

import (
	"context"

	"skillbridge/models"
	"skillbridge/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Open starts a booking interaction with mentorID and returns its draft id.
func (s *DefaultBookingSessionService) Open(ctx context.Context, mentorID string) (*models.BookingView, error) {
	requesterID := utils.RequesterIDFromContext(ctx)
	if requesterID == "" {
		return nil, models.NewValidationError("requesterId", "requester is required")
	}
	mentor, err := s.Mentors.Get(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	mgr := s.manager(NewMachine(uuid.New().String(), requesterID))
	if err := mgr.OpenFor(ctx, *mentor); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, mgr.Machine()); err != nil {
		return nil, err
	}

	s.logger().Info("Booking session opened",
		zap.String("draftId", mgr.Machine().ID),
		zap.String("mentorId", mentor.ID),
		zap.String("requesterId", requesterID),
	)
	return s.view(ctx, mgr.Machine()), nil
}

func (s *DefaultBookingSessionService) Get(ctx context.Context, draftID string) (*models.BookingView, error) {
	m, err := s.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, m), nil
}

func (s *DefaultBookingSessionService) ChooseSessionType(ctx context.Context, draftID string, t models.SessionType) (*models.BookingView, error) {
	return s.apply(ctx, draftID, func(mgr *Manager) error { return mgr.ChooseSessionType(ctx, t) })
}

func (s *DefaultBookingSessionService) Back(ctx context.Context, draftID string) (*models.BookingView, error) {
	return s.apply(ctx, draftID, func(mgr *Manager) error { return mgr.Back(ctx) })
}

func (s *DefaultBookingSessionService) SelectSchedule(ctx context.Context, draftID, date, slot, notes string) (*models.BookingView, error) {
	return s.apply(ctx, draftID, func(mgr *Manager) error { return mgr.SelectSchedule(ctx, date, slot, notes) })
}

// Confirm books the draft. On *models.SlotConflictError the draft stays open
// in schedule selection so another slot can be chosen.
func (s *DefaultBookingSessionService) Confirm(ctx context.Context, draftID string) (*models.BookingView, error) {
	return s.apply(ctx, draftID, func(mgr *Manager) error {
		_, err := mgr.Confirm(ctx)
		return err
	})
}

func (s *DefaultBookingSessionService) Cancel(ctx context.Context, draftID string) (*models.BookingView, error) {
	return s.apply(ctx, draftID, func(mgr *Manager) error { return mgr.Cancel(ctx) })
}

// apply loads the draft, runs op and stores the result whether or not op failed.
func (s *DefaultBookingSessionService) apply(ctx context.Context, draftID string, op func(*Manager) error) (*models.BookingView, error) {
	m, err := s.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	mgr := s.manager(m)
	opErr := op(mgr)
	if err := s.persist(ctx, mgr.Machine()); err != nil {
		return nil, err
	}
	if opErr != nil {
		return nil, opErr
	}
	return s.view(ctx, mgr.Machine()), nil
}

func (s *DefaultBookingSessionService) load(ctx context.Context, draftID string) (Machine, error) {
	m, err := s.Drafts.Load(ctx, draftID)
	if err != nil {
		return Machine{}, err
	}
	if m.RequesterID != utils.RequesterIDFromContext(ctx) {
		return Machine{}, models.NewNotFoundError("booking draft", draftID)
	}
	return m, nil
}

// persist refreshes the draft's TTL, or drops it once the interaction is over.
func (s *DefaultBookingSessionService) persist(ctx context.Context, m Machine) error {
	if m.State.Terminal() {
		return s.Drafts.Delete(ctx, m.ID)
	}
	return s.Drafts.Save(ctx, m)
}

func (s *DefaultBookingSessionService) manager(m Machine) *Manager {
	mgr := NewManager(m, s.Store, s.Sink, s.logger())
	if s.Clock != nil {
		mgr.Clock = s.Clock
	}
	return mgr
}

func (s *DefaultBookingSessionService) view(ctx context.Context, m Machine) *models.BookingView {
	v := &models.BookingView{
		DraftID: m.ID,
		State:   m.State,
		Mentor:  m.Mentor,
		Draft:   m.Draft,
		Session: m.Session,
	}
	if m.Draft != nil && m.Draft.Date != "" {
		open, err := s.Store.OpenSlots(ctx, m.Draft.MentorID, m.Draft.Date)
		if err != nil {
			s.logger().Warn("Failed to load open slots", zap.String("draftId", m.ID), zap.Error(err))
		} else {
			v.OpenSlots = open
		}
	}
	return v
}

func (s *DefaultBookingSessionService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
