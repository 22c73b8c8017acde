package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"booking-engine/internal/pkg/errs"
)

// Slot is a fixed, named point in the daily schedule, e.g. "10:00 AM".
// One slot holds at most one booking.
type Slot struct {
	label string
	hour  int // 24-hour clock
}

func (s Slot) Label() string { return s.label }
func (s Slot) Hour() int     { return s.hour }

// Instant anchors the slot on a calendar date, producing the absolute
// appointment timestamp in the date's location.
func (s Slot) Instant(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), s.hour, 0, 0, 0, date.Location())
}

// ReconstructSlot restores a slot from its persisted canonical label.
func ReconstructSlot(label string) Slot {
	h, _, err := ParseClock(label)
	if err != nil {
		return Slot{label: label}
	}
	return Slot{label: label, hour: h}
}

// ParseClock resolves a 12-hour slot label ("H:MM AM|PM") to its 24-hour
// clock hour and minute. Noon and midnight follow the usual convention:
// "12:00 PM" is hour 12, "12:00 AM" is hour 0.
func ParseClock(label string) (hour, minute int, err error) {
	fields := strings.Fields(strings.TrimSpace(label))
	if len(fields) != 2 {
		return 0, 0, errs.Mark(fmt.Errorf("malformed slot label %q", label), errs.ErrUnknownSlot)
	}

	hm := strings.SplitN(fields[0], ":", 2)
	if len(hm) != 2 {
		return 0, 0, errs.Mark(fmt.Errorf("malformed slot time %q", fields[0]), errs.ErrUnknownSlot)
	}
	h, herr := strconv.Atoi(hm[0])
	m, merr := strconv.Atoi(hm[1])
	if herr != nil || merr != nil || h < 1 || h > 12 || m < 0 || m > 59 {
		return 0, 0, errs.Mark(fmt.Errorf("malformed slot time %q", fields[0]), errs.ErrUnknownSlot)
	}

	switch strings.ToUpper(fields[1]) {
	case "AM":
		if h == 12 {
			h = 0
		}
	case "PM":
		if h != 12 {
			h += 12
		}
	default:
		return 0, 0, errs.Mark(fmt.Errorf("unknown meridiem in %q", label), errs.ErrUnknownSlot)
	}
	return h, m, nil
}

// FormatLabel renders a 24-hour clock hour as the canonical slot label.
func FormatLabel(hour24 int) string {
	meridiem := "AM"
	display := hour24
	switch {
	case hour24 == 0:
		display = 12
	case hour24 == 12:
		meridiem = "PM"
	case hour24 > 12:
		display = hour24 - 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:00 %s", display, meridiem)
}
