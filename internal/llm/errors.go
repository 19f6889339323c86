package llm

import "errors"

var (
	// ErrNoAPIKey indicates no API key is configured.
	ErrNoAPIKey = errors.New("no API key configured")

	// ErrUnavailable indicates the Gemini endpoint is unreachable.
	ErrUnavailable = errors.New("model endpoint unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrQuota indicates the request was rejected for rate or quota limits.
	ErrQuota = errors.New("model quota exceeded")

	// ErrEmptyResponse indicates the model returned no usable candidates.
	ErrEmptyResponse = errors.New("empty model response")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")
)
