package routes

import (
	"skillbridge/handlers"
	"skillbridge/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the step-by-step booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.Use(middleware.RequireRequester())
		booking.POST("/session", hb.OpenBooking)
		booking.GET("/session/:draftID", hb.GetBooking)
		booking.PUT("/session/:draftID/type", hb.ChooseSessionType)
		booking.PUT("/session/:draftID/back", hb.BackBooking)
		booking.PUT("/session/:draftID/schedule", hb.SelectSchedule)
		booking.POST("/session/:draftID/confirm", hb.ConfirmBooking)
		booking.DELETE("/session/:draftID", hb.CancelBooking)
	}
}

// RegisterSessionRoutes registers endpoints for booked sessions.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	sessions := r.Group("/api/sessions")
	{
		sessions.Use(middleware.RequireRequester())
		sessions.GET("/:id", hb.GetSessionHandler)
		sessions.DELETE("/:id", hb.CancelSessionHandler)
		sessions.PATCH("/:id/status", hb.UpdateSessionStatusHandler)
	}
}
