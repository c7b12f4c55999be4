package service

import "errors"

var (
	ErrInvalidDataProvided      = errors.New("invalid data provided")
	ErrInvalidClientCredentials = errors.New("invalid client credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrFeedUnavailable marks transient transport trouble: the feed server
	// could not be reached or did not answer in time. Sessions failing with it
	// are safe to retry on the next tick.
	ErrFeedUnavailable = errors.New("feed server unavailable")

	// ErrFeedInternal marks a server-side failure reported by the feed.
	ErrFeedInternal = errors.New("feed server internal error")

	// ErrTruncatedFeedStalled is returned when a truncated change list holds
	// no version past the cursor, so a follow-up page could never progress.
	ErrTruncatedFeedStalled = errors.New("truncated change list made no progress")
)
