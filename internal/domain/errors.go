package domain

import "errors"

// An unknown university is not an error; it renders the no-reviews message.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrDataLoad     = errors.New("data load failed")
)
