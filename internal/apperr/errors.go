// Package apperr holds the sentinel errors shared across Scoop packages.
package apperr

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidTopic     = errors.New("invalid topic")
	ErrInvalidLesson    = errors.New("invalid lesson")
	ErrStoreUnavailable = errors.New("knowledge store unavailable")
)
