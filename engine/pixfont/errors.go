package pixfont

import "errors"

var (
	ErrEmptyString       = errors.New("empty string")
	ErrStringTooLong     = errors.New("string exceeds maximum length")
	ErrNilImage          = errors.New("nil image buffer")
	ErrInvalidDimensions = errors.New("image dimensions must be positive")
	ErrImageTooSmall     = errors.New("image buffer smaller than width*height")
	ErrInvalidAtlas      = errors.New("invalid atlas")
)

// Status is the two state result reported at host boundaries.
type Status int

const (
	Failure Status = 0
	Success Status = 1
)

func (s Status) String() string {
	if s == Success {
		return "success"
	}
	return "failure"
}

// StatusFromError collapses an error into Success or Failure.
func StatusFromError(err error) Status {
	if err != nil {
		return Failure
	}
	return Success
}
