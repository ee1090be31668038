package agent

import "errors"

// Sentinel errors for the backend registry.
var (
	ErrBackendNotFound = errors.New("backend not found")
	ErrBackendExists   = errors.New("backend already registered")
	ErrEmptyName       = errors.New("backend name is empty")
)
