package external

import "errors"

var (
	ErrMalformedResponse = errors.New("external: malformed model response")
	ErrInvalidTitle      = errors.New("external: invalid title")
	ErrInvalidPriority   = errors.New("external: invalid priority")
	ErrInvalidConfidence = errors.New("external: confidence out of range")
	ErrInvalidTimestamp  = errors.New("external: invalid timestamp")
)
