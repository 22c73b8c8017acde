package rating

import "errors"

var (
	ErrInvalidStars   = errors.New("stars must be between 1 and 5")
	ErrFeedbackTooLong = errors.New("feedback exceeds maximum length")
)
