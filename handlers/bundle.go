package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Mentor directory endpoints
	SearchMentorsHandler  gin.HandlerFunc
	GetMentorHandler      gin.HandlerFunc
	GetMentorSlotsHandler gin.HandlerFunc

	// Booking endpoints
	OpenBooking       gin.HandlerFunc
	GetBooking        gin.HandlerFunc
	ChooseSessionType gin.HandlerFunc
	BackBooking       gin.HandlerFunc
	SelectSchedule    gin.HandlerFunc
	ConfirmBooking    gin.HandlerFunc
	CancelBooking     gin.HandlerFunc

	// Session endpoints
	GetSessionHandler          gin.HandlerFunc
	CancelSessionHandler       gin.HandlerFunc
	UpdateSessionStatusHandler gin.HandlerFunc
}

// NewHandlerBundle wires the handler methods into a bundle.
func NewHandlerBundle(mentors *MentorHandler, bookings *BookingHandler, sessions *SessionHandler) *HandlerBundle {
	return &HandlerBundle{
		SearchMentorsHandler:  mentors.SearchMentorsHandler,
		GetMentorHandler:      mentors.GetMentorHandler,
		GetMentorSlotsHandler: mentors.GetMentorSlotsHandler,

		OpenBooking:       bookings.OpenBookingHandler,
		GetBooking:        bookings.GetBookingHandler,
		ChooseSessionType: bookings.ChooseSessionTypeHandler,
		BackBooking:       bookings.BackHandler,
		SelectSchedule:    bookings.SelectScheduleHandler,
		ConfirmBooking:    bookings.ConfirmBookingHandler,
		CancelBooking:     bookings.CancelBookingHandler,

		GetSessionHandler:          sessions.GetSessionHandler,
		CancelSessionHandler:       sessions.CancelSessionHandler,
		UpdateSessionStatusHandler: sessions.UpdateSessionStatusHandler,
	}
}
