package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	s, ok := ParseSlot("9:00")
	assert.True(t, ok)
	assert.Equal(t, Slot0900, s)

	_, ok = ParseSlot("11:00")
	assert.False(t, ok)

	h, m := Slot1400.Clock()
	assert.Equal(t, 14, h)
	assert.Equal(t, 0, m)
}

func TestOpenSlots(t *testing.T) {
	open := OpenSlots([]Slot{Slot1000, Slot1600})
	assert.Equal(t, []Slot{Slot0900, Slot1400, Slot1800}, open)
	assert.Equal(t, AllSlots, OpenSlots(nil))
}

func TestStartsAt(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	at, err := StartsAt("2026-10-21", Slot1400, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 21, 14, 0, 0, 0, loc), at)

	_, err = StartsAt("21/10/2026", Slot1400, loc)
	assert.Error(t, err)
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCompleted))
	assert.True(t, StatusCancelled.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusPending))
	assert.False(t, StatusPending.CanTransitionTo(StatusCompleted))

	assert.True(t, StatusPending.Active())
	assert.False(t, StatusCompleted.Active())
}

func TestBookRequestValidate(t *testing.T) {
	ok := BookRequest{MentorID: "m", RequesterID: "u", Date: "2026-10-21", Slot: Slot1400, SessionType: SessionVideo}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.Slot = "11:00"
	var verr *ValidationError
	require.True(t, errors.As(bad.Validate(), &verr))
	assert.Equal(t, "slot", verr.Field)

	bad = ok
	bad.Date = "tomorrow"
	require.True(t, errors.As(bad.Validate(), &verr))
	assert.Equal(t, "date", verr.Field)
}

func TestMentorValidate(t *testing.T) {
	m := Mentor{Name: "Priya", HourlyRate: 250000, Rating: 4.9}
	assert.NoError(t, m.Validate())

	m.Rating = 5.1
	assert.Error(t, m.Validate())

	m.Rating = 4
	m.HourlyRate = 0
	assert.Error(t, m.Validate())
}

func TestNewAvailability(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "Available today", NewAvailability("2026-10-19", AllSlots, "2026-10-19", now).Summary)
	assert.Equal(t, "Next slot: 2026-10-21 14:00",
		NewAvailability("2026-10-21", []Slot{Slot1400}, "2026-10-19", now).Summary)
	assert.Equal(t, "Fully booked on 2026-10-21",
		NewAvailability("2026-10-21", nil, "2026-10-19", now).Summary)
}
