package llm

import "errors"

var (
	// ErrUnknownProvider indicates a provider name outside the known set.
	ErrUnknownProvider = errors.New("unknown llm provider")

	// ErrMissingAPIKey indicates the Anthropic backend was selected
	// without an API key.
	ErrMissingAPIKey = errors.New("anthropic api key not configured")

	// ErrUnavailable indicates the backend is unreachable.
	ErrUnavailable = errors.New("llm backend unavailable")

	// ErrEmptyResponse indicates the backend returned no text.
	ErrEmptyResponse = errors.New("empty llm response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
