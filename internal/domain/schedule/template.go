package schedule

import (
	"booking-engine/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
)

// Template is the fixed daily slot sequence, built once at startup and
// shared read-only afterwards. It never mutates at runtime.
type Template struct {
	slots  []Slot
	byName map[string]Slot
}

// NewTemplate builds hourly slots from openHour through closeHour inclusive,
// both on the 24-hour clock.
func NewTemplate(openHour, closeHour int) (Template, error) {
	if openHour < 0 || closeHour > 23 || openHour > closeHour {
		return Template{}, cr.Newf("invalid opening hours %d-%d", openHour, closeHour)
	}

	t := Template{byName: make(map[string]Slot)}
	for h := openHour; h <= closeHour; h++ {
		s := Slot{label: FormatLabel(h), hour: h}
		t.slots = append(t.slots, s)
		t.byName[s.label] = s
	}
	return t, nil
}

// Slots returns the template in daily order. Callers must not modify the
// returned slice.
func (t Template) Slots() []Slot {
	return t.slots
}

func (t Template) Len() int {
	return len(t.slots)
}

// Lookup resolves a slot label against the template.
func (t Template) Lookup(label string) (Slot, error) {
	s, ok := t.byName[label]
	if !ok {
		return Slot{}, errs.Mark(cr.Newf("slot %q not in template", label), errs.ErrUnknownSlot)
	}
	return s, nil
}
