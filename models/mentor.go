package models

import (
	"fmt"
	"time"
)

// Mentor is a directory entry. Only Availability changes after insertion.
type Mentor struct {
	ID           string       `bson:"id" json:"id"`
	Name         string       `bson:"name" json:"name"`
	Title        string       `bson:"title" json:"title"`
	Company      string       `bson:"company" json:"company"`
	Avatar       string       `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Bio          string       `bson:"bio,omitempty" json:"bio,omitempty"`
	Location     string       `bson:"location,omitempty" json:"location,omitempty"`
	Languages    []string     `bson:"languages,omitempty" json:"languages,omitempty"`
	Skills       []string     `bson:"skills" json:"skills"`
	HourlyRate   int64        `bson:"hourly_rate" json:"hourlyRate"` // minor currency units
	Currency     string       `bson:"currency" json:"currency"`
	Rating       float64      `bson:"rating" json:"rating"`
	SessionCount int          `bson:"session_count" json:"sessionCount"`
	Availability Availability `bson:"availability" json:"availability"`
	Seq          int64        `bson:"seq" json:"-"` // insertion order
}

// Availability is the mentor's booking signal shown in search results.
type Availability struct {
	Summary   string    `bson:"summary" json:"summary"`
	Date      string    `bson:"date,omitempty" json:"date,omitempty"`
	OpenSlots []Slot    `bson:"open_slots,omitempty" json:"openSlots,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitzero"`
}

// Validate checks the fields that must hold for every stored mentor.
func (m Mentor) Validate() error {
	switch {
	case m.Name == "":
		return NewValidationError("name", "mentor name is required")
	case m.HourlyRate <= 0:
		return NewValidationError("hourlyRate", "hourly rate must be positive")
	case m.Rating < 0 || m.Rating > 5:
		return NewValidationError("rating", "rating must be between 0 and 5")
	}
	return nil
}

// NewAvailability summarises the open slots of a mentor on date.
func NewAvailability(date string, open []Slot, today string, at time.Time) Availability {
	a := Availability{Date: date, OpenSlots: open, UpdatedAt: at}
	switch {
	case len(open) == 0:
		a.Summary = fmt.Sprintf("Fully booked on %s", date)
	case date == today:
		a.Summary = "Available today"
	default:
		a.Summary = fmt.Sprintf("Next slot: %s %s", date, open[0])
	}
	return a
}
