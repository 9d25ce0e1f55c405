package domain

import "errors"

var (
	// ErrLanguageNotSupported is returned when no unit catalog exists for the
	// requested language and no usable fallback was supplied
	ErrLanguageNotSupported = errors.New("language not supported")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
