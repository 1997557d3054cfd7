package model

import "errors"

var (
	// ErrNotFound marks a direct-by-id read or merge against an absent key.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks input rejected before any remote call.
	ErrValidation = errors.New("validation")
)
