package record

import (
	"errors"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrExpired     = errors.New("record link expired")
	ErrFetch       = errors.New("record store request failed")
	ErrInvalidData = errors.New("invalid record data")
)

// User facing messages for the errors above.
const (
	MessageNotFound       = "Error loading resource or resource not found."
	MessageSharedNotFound = "Error loading shared page or page not found."
	MessageExpired        = "This link has expired."
	MessageFetch          = "Error loading content. Please try again later."
	MessageNoMatches      = "No matching content found."
)
