// Package internalerr defines the sentinel errors returned at the edges of
// the analysis: configuration loading, batch loading and the report archive.
// The engine itself never fails. Callers match them with errors.Is.
package internalerr

import "errors"

var (
	// ErrNotFound is returned when an archived report does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput marks batch files that cannot be decoded and reports
	// without an ID.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicate is returned when a report ID is saved twice.
	ErrDuplicate = errors.New("duplicate entry")
	// ErrStoreUnavailable is returned by a closed or unopenable archive.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrInvalidConfig marks policy or stoplist files the engine cannot use.
	ErrInvalidConfig = errors.New("invalid configuration")
)
