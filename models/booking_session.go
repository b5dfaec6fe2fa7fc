package models

// BookingState is the step a booking interaction is on.
type BookingState string

const (
	StateClosed               BookingState = "closed"
	StateSessionTypeSelection BookingState = "session_type_selection"
	StateScheduleSelection    BookingState = "schedule_selection"
	StateConfirmed            BookingState = "confirmed"
	StateCancelled            BookingState = "cancelled"
)

func (s BookingState) Terminal() bool {
	return s == StateConfirmed || s == StateCancelled
}

// BookingDraft is the in-progress selection of one booking interaction.
type BookingDraft struct {
	MentorID    string      `json:"mentorId"`
	SessionType SessionType `json:"sessionType,omitempty"`
	Date        string      `json:"date,omitempty"`
	Slot        Slot        `json:"slot,omitempty"`
	Notes       string      `json:"notes,omitempty"`
}

// Complete reports whether every field needed to book is set.
func (d BookingDraft) Complete() bool {
	return d.MentorID != "" && d.SessionType.Valid() && d.Date != "" && d.Slot.Valid()
}

// Request turns the draft into a BookRequest on behalf of requesterID.
func (d BookingDraft) Request(requesterID string) BookRequest {
	return BookRequest{
		MentorID:    d.MentorID,
		RequesterID: requesterID,
		Date:        d.Date,
		Slot:        d.Slot,
		SessionType: d.SessionType,
		Notes:       d.Notes,
	}
}

// BookingView is what the booking endpoints return after each step.
type BookingView struct {
	DraftID   string        `json:"draftId"`
	State     BookingState  `json:"state"`
	Mentor    *Mentor       `json:"mentor,omitempty"`
	Draft     *BookingDraft `json:"draft,omitempty"`
	Session   *Session      `json:"session,omitempty"`
	OpenSlots []Slot        `json:"openSlots,omitempty"`
}
