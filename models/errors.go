package models

import "fmt"

// ValidationError reports malformed input such as a past date or unknown slot.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Message
	}
	return fmt.Sprintf("validation error on %s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// SlotConflictError reports an attempt to double-book a mentor.
type SlotConflictError struct {
	MentorID string
	Date     string
	Slot     Slot
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot %s on %s is already booked for mentor %s", e.Slot, e.Date, e.MentorID)
}

// NotFoundError reports an unknown mentor, session or booking draft.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// InvalidTransitionError reports a booking step attempted from the wrong state.
type InvalidTransitionError struct {
	State  BookingState
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s while booking is %s", e.Action, e.State)
}
