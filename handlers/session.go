package handlers

import (
	"net/http"

	"skillbridge/models"
	"skillbridge/services/booking"
	"skillbridge/utils"

	"github.com/gin-gonic/gin"
)

// SessionHandler manages booked sessions. A requester only sees and changes
// their own sessions; anyone else's are reported as not found.
type SessionHandler struct {
	Store booking.SessionStore
}

func NewSessionHandler(store booking.SessionStore) *SessionHandler {
	return &SessionHandler{Store: store}
}

func (h *SessionHandler) GetSessionHandler(c *gin.Context) {
	s, ok := h.owned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s)
}

// CancelSessionHandler is idempotent: cancelling twice returns 200 both times.
func (h *SessionHandler) CancelSessionHandler(c *gin.Context) {
	if _, ok := h.owned(c); !ok {
		return
	}
	s, err := h.Store.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SessionHandler) UpdateSessionStatusHandler(c *gin.Context) {
	var body struct {
		Status models.SessionStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		bindError(c, err)
		return
	}
	if _, ok := h.owned(c); !ok {
		return
	}
	s, err := h.Store.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// owned loads the :id session and checks it belongs to the requester. On
// failure the error response has already been written.
func (h *SessionHandler) owned(c *gin.Context) (*models.Session, bool) {
	id := c.Param("id")
	s, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if s.RequesterID != utils.RequesterIDFromContext(c.Request.Context()) {
		respondError(c, models.NewNotFoundError("session", id))
		return nil, false
	}
	return s, true
}
