package handlers

import (
	"net/http"

	"skillbridge/models"
	"skillbridge/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the multi-step booking flow.
type BookingHandler struct {
	Service booking.BookingSessionService
}

func NewBookingHandler(svc booking.BookingSessionService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) OpenBookingHandler(c *gin.Context) {
	var body struct {
		MentorID string `json:"mentorId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		bindError(c, err)
		return
	}
	view, err := h.Service.Open(c.Request.Context(), body.MentorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	view, err := h.Service.Get(c.Request.Context(), c.Param("draftID"))
	h.reply(c, view, err)
}

func (h *BookingHandler) ChooseSessionTypeHandler(c *gin.Context) {
	var body struct {
		SessionType models.SessionType `json:"sessionType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		bindError(c, err)
		return
	}
	view, err := h.Service.ChooseSessionType(c.Request.Context(), c.Param("draftID"), body.SessionType)
	h.reply(c, view, err)
}

func (h *BookingHandler) BackHandler(c *gin.Context) {
	view, err := h.Service.Back(c.Request.Context(), c.Param("draftID"))
	h.reply(c, view, err)
}

func (h *BookingHandler) SelectScheduleHandler(c *gin.Context) {
	var body struct {
		Date  string `json:"date" binding:"required"`
		Slot  string `json:"slot" binding:"required"`
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		bindError(c, err)
		return
	}
	view, err := h.Service.SelectSchedule(c.Request.Context(), c.Param("draftID"), body.Date, body.Slot, body.Notes)
	h.reply(c, view, err)
}

func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	draftID := c.Param("draftID")
	view, err := h.Service.Confirm(c.Request.Context(), draftID)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Booking confirmed",
		zap.String("draftId", draftID),
		zap.String("sessionId", view.Session.ID),
	)
	c.JSON(http.StatusCreated, view)
}

func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	view, err := h.Service.Cancel(c.Request.Context(), c.Param("draftID"))
	h.reply(c, view, err)
}

func (h *BookingHandler) reply(c *gin.Context, view *models.BookingView, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
