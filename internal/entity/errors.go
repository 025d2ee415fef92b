package entity

import "errors"

// Domain errors
var (
	// Input errors
	ErrEmptyProblem    = errors.New("problem text is empty")
	ErrProblemTooShort = errors.New("problem description is too short")
	ErrProblemTooLong  = errors.New("problem description is too long")
	ErrMissingField    = errors.New("required field is missing")

	// Provider errors
	ErrUpstream            = errors.New("model provider returned an error")
	ErrUpstreamUnavailable = errors.New("model provider is unreachable")
)
