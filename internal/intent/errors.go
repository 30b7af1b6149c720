package intent

import "errors"

var (
	ErrEmptyInput    = errors.New("input text is empty")
	ErrInputTooLong  = errors.New("input text is too long")
	ErrTooManyInputs = errors.New("too many inputs in batch")
)
