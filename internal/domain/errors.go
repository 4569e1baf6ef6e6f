package domain

import "errors"

var (
	// ErrInitialization means the assistant session could not be opened
	// (missing credential or endpoint construction failure). Terminal for the session.
	ErrInitialization = errors.New("assistant initialization failed")

	// ErrNotReady means a message was sent through a session that never opened.
	ErrNotReady = errors.New("assistant session not ready")

	// ErrTransport covers any failure during an in-flight exchange. The session stays usable.
	ErrTransport = errors.New("assistant transport error")

	ErrEmptyMessage        = errors.New("message text is required")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionBusy         = errors.New("a message is already being processed for this session")
	ErrCatalogItemNotFound = errors.New("catalog item not found")
)
