package booking

import (
	"context"
	"time"

	"skillbridge/models"
	"skillbridge/services/notification"

	"go.uber.org/zap"
)

// BookingSessionService hosts booking interactions across requests. Every
// call acts for the requester carried by ctx (see utils.WithRequesterID);
// drafts owned by someone else are reported as not found.
type BookingSessionService interface {
	Open(ctx context.Context, mentorID string) (*models.BookingView, error)
	Get(ctx context.Context, draftID string) (*models.BookingView, error)
	ChooseSessionType(ctx context.Context, draftID string, t models.SessionType) (*models.BookingView, error)
	Back(ctx context.Context, draftID string) (*models.BookingView, error)
	SelectSchedule(ctx context.Context, draftID, date, slot, notes string) (*models.BookingView, error)
	Confirm(ctx context.Context, draftID string) (*models.BookingView, error)
	Cancel(ctx context.Context, draftID string) (*models.BookingView, error)
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Mentors MentorDirectory
	Store   SessionStore
	Drafts  DraftStore
	Sink    notification.Sink
	Clock   func() time.Time
	Logger  *zap.Logger
}

var _ BookingSessionService = (*DefaultBookingSessionService)(nil)
