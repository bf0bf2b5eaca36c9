package connectors

import "errors"

var (
	// ErrMissingAPIKey means the NewsAPI credential was not configured. The
	// pipeline fails fast on it before any work begins.
	ErrMissingAPIKey = errors.New("news api key not provided")

	// ErrUpstream means the raw article batch could not be obtained, either
	// because the upstream was unreachable or because its response was
	// malformed. The whole batch is aborted; nothing is persisted.
	ErrUpstream = errors.New("upstream news fetch failed")
)
