package maestro

import "errors"

// Render errors. Every error returned by the pipeline wraps exactly one of
// these; match with errors.Is. None of them are retried internally.
var (
	// ErrAssetNotFound is returned when a portrait or frame layer file is absent.
	ErrAssetNotFound = errors.New("maestro: asset not found")

	// ErrAssetCorrupt is returned when an asset file exists but cannot be decoded.
	ErrAssetCorrupt = errors.New("maestro: asset corrupt")

	// ErrUnknownFrameType is returned when the catalog has no color layer for
	// the requested frame type and modifier.
	ErrUnknownFrameType = errors.New("maestro: unknown frame type")

	// ErrCompositionFailure is returned when a geometric invariant is violated,
	// for example a portrait that does not fit on the frame canvas.
	ErrCompositionFailure = errors.New("maestro: composition failure")

	// ErrTimeout is returned when the request's Deadline has passed.
	ErrTimeout = errors.New("maestro: render deadline exceeded")
)
