package services

import "errors"

var (
	// ErrNotOwner is returned when a user changes a post they do not own.
	ErrNotOwner = errors.New("user does not own the post")
	// ErrMissingData is returned when a post is created without its data or detail.
	ErrMissingData = errors.New("missing required data")
	// ErrInvalidInput wraps every validation failure.
	ErrInvalidInput = errors.New("invalid input")
)
