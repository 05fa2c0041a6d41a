package entities

import "errors"

// Domain errors
var (
	// Transcription provider errors
	ErrTranscriptNotFound = errors.New("transcript not found")
	ErrProviderNotReady   = errors.New("transcription provider not configured")
	ErrUpstream           = errors.New("upstream request failed")

	// Project data errors
	ErrProjectSourceNotConfigured = errors.New("project data service not configured")

	// Completion errors
	ErrQuotaExceeded = errors.New("completion quota exceeded")
)
