package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown renderer backend.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrIncompleteAssessment indicates scoring was attempted before every
	// dimension had a level.
	ErrIncompleteAssessment = errors.New("assessment incomplete")

	// ErrAssetUnavailable indicates a branding asset could not be loaded.
	// Renders continue without the asset.
	ErrAssetUnavailable = errors.New("asset unavailable")

	// ErrRender indicates the document backend failed to produce output.
	ErrRender = errors.New("render failed")

	// ErrSessionNotFound indicates an unknown or already discarded session.
	ErrSessionNotFound = errors.New("session not found")
)

// IncompleteAssessmentError lists the dimensions still missing a level.
type IncompleteAssessmentError struct {
	Missing []Dimension
}

func (e *IncompleteAssessmentError) Error() string {
	names := make([]string, len(e.Missing))
	for i, d := range e.Missing {
		names[i] = d.DisplayName()
	}
	return fmt.Sprintf("%s: missing %s", ErrIncompleteAssessment, strings.Join(names, ", "))
}

// Unwrap returns ErrIncompleteAssessment.
func (e *IncompleteAssessmentError) Unwrap() error {
	return ErrIncompleteAssessment
}

// NotFoundError reports a catalog lookup outside the dimension/level grid.
// A complete catalog never returns it.
type NotFoundError struct {
	Dimension Dimension
	Level     Level
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("catalog entry %s/%d: %s", e.Dimension, int(e.Level), ErrNotFound)
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// AssetUnavailableError reports a branding asset that could not be loaded.
type AssetUnavailableError struct {
	// Asset is the logical asset name (e.g. "product_mark").
	Asset string

	// Ref is the URL or path that was tried.
	Ref string

	// Err is the underlying cause.
	Err error
}

func (e *AssetUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %q (%s)", ErrAssetUnavailable, e.Asset, e.Ref)
	}
	return fmt.Sprintf("%s %q (%s): %v", ErrAssetUnavailable, e.Asset, e.Ref, e.Err)
}

// Is matches ErrAssetUnavailable.
func (e *AssetUnavailableError) Is(target error) bool {
	return target == ErrAssetUnavailable
}

// Unwrap returns the underlying cause.
func (e *AssetUnavailableError) Unwrap() error {
	return e.Err
}

// RenderError reports a document backend failure.
type RenderError struct {
	Backend string
	Err     error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrRender, e.Backend, e.Err)
}

// Is matches ErrRender.
func (e *RenderError) Is(target error) bool {
	return target == ErrRender
}

// Unwrap returns the underlying cause.
func (e *RenderError) Unwrap() error {
	return e.Err
}
