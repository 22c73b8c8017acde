package rating

import "strings"

const MaxFeedbackLength = 1000

type Stars struct {
	value int
}

func NewStars(v int) (Stars, error) {
	if v < 1 || v > 5 {
		return Stars{}, ErrInvalidStars
	}
	return Stars{value: v}, nil
}

func (s Stars) Value() int { return s.value }

// NeedsFeedback reports whether the dispatcher should ask the customer for
// written feedback. Only sub-4 ratings trigger the request.
func (s Stars) NeedsFeedback() bool {
	return s.value < 4
}

// Feedback is optional free text attached to a rating.
type Feedback struct {
	text string
}

func NewFeedback(s string) (Feedback, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxFeedbackLength {
		return Feedback{}, ErrFeedbackTooLong
	}
	return Feedback{text: t}, nil
}

func (f Feedback) String() string { return f.text }
func (f Feedback) IsEmpty() bool  { return f.text == "" }
