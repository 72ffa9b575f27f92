package review

import "errors"

var (
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrMessageTooLong   = errors.New("message exceeds maximum length")
	ErrVideoURLRequired = errors.New("video url is required")
)
