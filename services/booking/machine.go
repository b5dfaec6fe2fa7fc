package booking

import (
	"errors"
	"fmt"
	"time"

	"skillbridge/models"
)

// EffectKind names a side effect requested by a Machine transition.
type EffectKind string

const (
	// EffectBook asks the host to call the session store with Effect.Request.
	EffectBook EffectKind = "book"
	// EffectNotify asks the host to send Effect.Message to the notification sink.
	EffectNotify EffectKind = "notify"
)

type Effect struct {
	Kind    EffectKind
	Request models.BookRequest
	Notice  models.NotificationKind
	Message string
}

// Machine is the state of one booking interaction. Transitions are pure: they
// return the next Machine and the effects to run, and never modify the receiver.
type Machine struct {
	ID          string               `json:"id"`
	RequesterID string               `json:"requesterId"`
	State       models.BookingState  `json:"state"`
	Mentor      *models.Mentor       `json:"mentor,omitempty"`
	Draft       *models.BookingDraft `json:"draft,omitempty"`
	Session     *models.Session      `json:"session,omitempty"`
}

// NewMachine starts a closed interaction on behalf of requesterID.
func NewMachine(id, requesterID string) Machine {
	return Machine{ID: id, RequesterID: requesterID, State: models.StateClosed}
}

func (m Machine) invalid(action string) (Machine, []Effect, error) {
	return m, nil, &models.InvalidTransitionError{State: m.State, Action: action}
}

// withDraft returns a copy of m whose draft can be edited without aliasing m's.
func (m Machine) withDraft() (Machine, *models.BookingDraft) {
	next := m
	d := models.BookingDraft{}
	if m.Draft != nil {
		d = *m.Draft
	}
	next.Draft = &d
	return next, &d
}

// OpenFor moves closed -> session_type_selection with a fresh draft for mentor.
func (m Machine) OpenFor(mentor models.Mentor) (Machine, []Effect, error) {
	if m.State != models.StateClosed {
		return m.invalid("open a booking")
	}
	if mentor.ID == "" {
		return m, nil, models.NewValidationError("mentorId", "mentor is required")
	}
	next := m
	next.State = models.StateSessionTypeSelection
	next.Mentor = &mentor
	next.Draft = &models.BookingDraft{MentorID: mentor.ID}
	next.Session = nil
	return next, nil, nil
}

// ChooseSessionType moves session_type_selection -> schedule_selection.
func (m Machine) ChooseSessionType(t models.SessionType) (Machine, []Effect, error) {
	if m.State != models.StateSessionTypeSelection {
		return m.invalid("choose a session type")
	}
	if !t.Valid() {
		return m, nil, models.NewValidationError("sessionType", "unknown session type "+string(t))
	}
	next, d := m.withDraft()
	d.SessionType = t
	next.State = models.StateScheduleSelection
	return next, nil, nil
}

// Back moves schedule_selection -> session_type_selection, keeping the draft.
func (m Machine) Back() (Machine, []Effect, error) {
	if m.State != models.StateScheduleSelection {
		return m.invalid("go back")
	}
	next := m
	next.State = models.StateSessionTypeSelection
	return next, nil, nil
}

// SelectSchedule records date, slot and notes. The date is compared with today
// by calendar day only, so booking for today is allowed.
func (m Machine) SelectSchedule(date, slot, notes string, today time.Time) (Machine, []Effect, error) {
	if m.State != models.StateScheduleSelection {
		return m.invalid("select a schedule")
	}
	if err := checkDate(date, today); err != nil {
		return m, nil, err
	}
	s, ok := models.ParseSlot(slot)
	if !ok {
		return m, nil, models.NewValidationError("slot", "unknown time slot "+slot)
	}

	next, d := m.withDraft()
	d.Date = date
	d.Slot = s
	d.Notes = notes
	return next, nil, nil
}

// Confirm asks the host to book the draft. The state changes only once the
// host reports the outcome through BookingSucceeded or BookingFailed.
func (m Machine) Confirm(today time.Time) (Machine, []Effect, error) {
	if m.State != models.StateScheduleSelection {
		return m.invalid("confirm")
	}
	if m.Draft == nil || !m.Draft.Complete() {
		return m, nil, models.NewValidationError("schedule", "select a date and time slot before confirming")
	}
	if err := checkDate(m.Draft.Date, today); err != nil {
		return m, nil, err
	}
	return m, []Effect{{Kind: EffectBook, Request: m.Draft.Request(m.RequesterID)}}, nil
}

// BookingSucceeded moves schedule_selection -> confirmed and discards the draft.
func (m Machine) BookingSucceeded(session models.Session) (Machine, []Effect, error) {
	if m.State != models.StateScheduleSelection {
		return m.invalid("complete a booking")
	}
	next := m
	next.State = models.StateConfirmed
	next.Draft = nil
	next.Session = &session
	return next, []Effect{{
		Kind:    EffectNotify,
		Notice:  models.NotifySuccess,
		Message: successMessage(m.mentorName(), session),
	}}, nil
}

// BookingFailed keeps the machine in schedule_selection with its draft so
// the user can pick another slot.
func (m Machine) BookingFailed(cause error) (Machine, []Effect, error) {
	if m.State != models.StateScheduleSelection {
		return m.invalid("fail a booking")
	}
	return m, []Effect{{
		Kind:    EffectNotify,
		Notice:  models.NotifyError,
		Message: failureMessage(m.mentorName(), cause),
	}}, nil
}

// Cancel aborts from any non-terminal state and discards the draft.
func (m Machine) Cancel() (Machine, []Effect, error) {
	if m.State.Terminal() {
		return m.invalid("cancel")
	}
	next := m
	next.State = models.StateCancelled
	next.Draft = nil
	return next, nil, nil
}

func (m Machine) mentorName() string {
	if m.Mentor != nil && m.Mentor.Name != "" {
		return m.Mentor.Name
	}
	if m.Draft != nil {
		return "mentor " + m.Draft.MentorID
	}
	return "your mentor"
}

func checkDate(date string, today time.Time) error {
	day, err := models.ParseDate(date, today.Location())
	if err != nil {
		return models.NewValidationError("date", "date must be formatted YYYY-MM-DD")
	}
	y, mo, d := today.Date()
	if day.Before(time.Date(y, mo, d, 0, 0, 0, 0, today.Location())) {
		return models.NewValidationError("date", "date "+date+" is in the past")
	}
	return nil
}

func successMessage(mentor string, s models.Session) string {
	return fmt.Sprintf("%s with %s booked for %s at %s.", s.SessionType.Label(), mentor, s.Date, s.Slot)
}

func failureMessage(mentor string, cause error) string {
	var conflict *models.SlotConflictError
	if errors.As(cause, &conflict) {
		return fmt.Sprintf("The %s slot on %s with %s was just taken. Please pick another slot.",
			conflict.Slot, conflict.Date, mentor)
	}
	var notFound *models.NotFoundError
	if errors.As(cause, &notFound) {
		return fmt.Sprintf("Booking failed: %s is no longer available.", mentor)
	}
	return "Booking failed. Please try again."
}
