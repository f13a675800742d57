package services

import "errors"

var (
	// ErrPatientNotFound means the referenced patient does not exist.
	ErrPatientNotFound = errors.New("patient not found")
	// ErrPersistence means the store rejected or lost a write; no partial
	// state is retained.
	ErrPersistence = errors.New("persistence failure")
)
