package domain

import "errors"

var (
	ErrDuplicateSubmission = errors.New("duplicate submission")
	ErrUpstreamUnavailable = errors.New("contact upstream unavailable")
)
