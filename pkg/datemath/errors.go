package datemath

import "errors"

var (
	ErrEmptyPhrase        = errors.New("empty date phrase")
	ErrUnrecognizedPhrase = errors.New("unrecognized date phrase")
)
