package repository

import "errors"

// ErrNotFound is returned when a requested record is not found in the repository.
// This abstracts away the underlying storage implementation from the service layer.
var ErrNotFound = errors.New("record not found")

// ErrUnavailable wraps driver-level failures. Callers treat the store as
// best-effort: reads fall back to empty state, writes are logged and dropped.
var ErrUnavailable = errors.New("store unavailable")
