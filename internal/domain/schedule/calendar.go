package schedule

import "time"

// SlotKey identifies one bookable slot within the rolling window. Day is the
// weekday name; within a 7-day horizon weekday names are unambiguous.
type SlotKey struct {
	Day   string
	Label string
}

// OccupiedSet is a snapshot of slots consumed by occupying bookings
// (Pending or Confirmed).
type OccupiedSet map[SlotKey]struct{}

func (o OccupiedSet) Has(day, label string) bool {
	_, ok := o[SlotKey{Day: day, Label: label}]
	return ok
}

// OpenDay is one reportable day of the calendar: its weekday name, calendar
// date, and ordered open slots. Days with no open slot are never reported.
type OpenDay struct {
	Day   string
	Date  time.Time
	Slots []Slot
}

// OpenSlots computes availability for the next horizonDays calendar days,
// today included. A slot is open iff it is not occupied and, for today only,
// its clock time is strictly after now. Pure function of its inputs.
func OpenSlots(tmpl Template, now time.Time, horizonDays int, occupied OccupiedSet) []OpenDay {
	var days []OpenDay
	for i := 0; i < horizonDays; i++ {
		date := now.AddDate(0, 0, i)
		dayName := date.Weekday().String()

		var open []Slot
		for _, slot := range tmpl.Slots() {
			if occupied.Has(dayName, slot.Label()) {
				continue
			}
			if i == 0 && !slot.Instant(now).After(now) {
				continue
			}
			open = append(open, slot)
		}
		if len(open) == 0 {
			continue
		}
		days = append(days, OpenDay{
			Day:   dayName,
			Date:  time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
			Slots: open,
		})
	}
	return days
}

// DateForDay resolves a weekday name to its calendar date within the horizon
// starting at now. The second return is false when the name matches no day.
func DateForDay(now time.Time, horizonDays int, day string) (time.Time, bool) {
	for i := 0; i < horizonDays; i++ {
		date := now.AddDate(0, 0, i)
		if date.Weekday().String() == day {
			return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()), true
		}
	}
	return time.Time{}, false
}
