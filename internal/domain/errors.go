package domain

import "errors"

// Sentinel errors for backend operations
var (
	// ErrServerOffline indicates the cabinet backend is unreachable
	ErrServerOffline = errors.New("cabinet backend is unreachable")

	// ErrGameNotFound indicates the requested table does not exist
	ErrGameNotFound = errors.New("table not found")

	// ErrEmulatorNotFound indicates the requested emulator does not exist
	ErrEmulatorNotFound = errors.New("emulator not found")
)
