package models

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format of every booking date.
const DateLayout = "2006-01-02"

// Slot is one of the fixed time-of-day booking windows.
type Slot string

const (
	Slot0900 Slot = "09:00"
	Slot1000 Slot = "10:00"
	Slot1400 Slot = "14:00"
	Slot1600 Slot = "16:00"
	Slot1800 Slot = "18:00"
)

// AllSlots lists the bookable slots in time-of-day order.
var AllSlots = []Slot{Slot0900, Slot1000, Slot1400, Slot1600, Slot1800}

func (s Slot) Valid() bool {
	for _, known := range AllSlots {
		if s == known {
			return true
		}
	}
	return false
}

// ParseSlot accepts "14:00" as well as the unpadded "9:00".
func ParseSlot(raw string) (Slot, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) == 4 && raw[1] == ':' {
		raw = "0" + raw
	}
	s := Slot(raw)
	return s, s.Valid()
}

// Clock returns the hour and minute of the slot.
func (s Slot) Clock() (hour, minute int) {
	parts := strings.SplitN(string(s), ":", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	hour, _ = strconv.Atoi(parts[0])
	minute, _ = strconv.Atoi(parts[1])
	return hour, minute
}

// ParseDate parses a YYYY-MM-DD booking date in loc.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, strings.TrimSpace(raw), loc)
}

// StartsAt combines a booking date and slot into an instant in loc.
func StartsAt(date string, slot Slot, loc *time.Location) (time.Time, error) {
	day, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	h, m := slot.Clock()
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location()), nil
}

// OpenSlots returns the slots of AllSlots not present in taken.
func OpenSlots(taken []Slot) []Slot {
	used := make(map[Slot]bool, len(taken))
	for _, s := range taken {
		used[s] = true
	}
	open := make([]Slot, 0, len(AllSlots))
	for _, s := range AllSlots {
		if !used[s] {
			open = append(open, s)
		}
	}
	return open
}
