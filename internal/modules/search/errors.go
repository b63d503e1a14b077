package search

import "errors"

var (
	ErrValidation = errors.New("missing required search criteria")
	ErrNotFound   = errors.New("not found")
)
