package handlers

import (
	"net/http"
	"slices"

	"skillbridge/models"
	"skillbridge/services/booking"
	"skillbridge/services/directory"

	"github.com/gin-gonic/gin"
)

// MentorHandler serves the mentor directory.
type MentorHandler struct {
	Directory *directory.Directory
	Sessions  booking.SessionStore
}

func NewMentorHandler(dir *directory.Directory, sessions booking.SessionStore) *MentorHandler {
	return &MentorHandler{Directory: dir, Sessions: sessions}
}

// SearchMentorsHandler handles GET /api/mentors?q=&skill=.
func (h *MentorHandler) SearchMentorsHandler(c *gin.Context) {
	skill := c.DefaultQuery("skill", directory.AllSkills)
	mentors := slices.Collect(h.Directory.Search(c.Request.Context(), c.Query("q"), skill))
	if mentors == nil {
		mentors = []models.Mentor{}
	}
	c.JSON(http.StatusOK, gin.H{"mentors": mentors, "count": len(mentors)})
}

func (h *MentorHandler) GetMentorHandler(c *gin.Context) {
	mentor, err := h.Directory.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mentor)
}

// GetMentorSlotsHandler returns the booked sessions and open slots for ?date=.
func (h *MentorHandler) GetMentorSlotsHandler(c *gin.Context) {
	mentorID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		respondError(c, models.NewValidationError("date", "date query parameter is required"))
		return
	}

	sessions, err := h.Sessions.ListFor(c.Request.Context(), mentorID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	// Both slot lists come from the one read so they always partition AllSlots.
	taken := []models.Slot{}
	for _, s := range sessions {
		if s.Status.Active() {
			taken = append(taken, s.Slot)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"mentorId":   mentorID,
		"date":       date,
		"openSlots":  models.OpenSlots(taken),
		"takenSlots": taken,
		"sessions":   sessions,
		"allSlots":   models.AllSlots,
	})
}
