// Package errs defines the sentinel errors returned by hufblob.
//
// Errors returned by the library wrap one of these sentinels, so callers
// should compare with errors.Is rather than by equality:
//
//	data, err := hufblob.Decompress(artifact)
//	if errors.Is(err, errs.ErrCorrupt) {
//	    // the artifact is structurally inconsistent
//	}
package errs

import "errors"

var (
	// ErrEmptyInput is returned when compression is requested on a zero-symbol input.
	ErrEmptyInput = errors.New("empty input")

	// ErrTruncated is returned when an artifact is shorter than the minimum viable header.
	ErrTruncated = errors.New("truncated artifact")

	// ErrCorrupt is returned when an artifact is structurally inconsistent, e.g. the
	// declared padding exceeds the available payload bits or the embedded tree is invalid.
	ErrCorrupt = errors.New("corrupt artifact")

	// ErrIOUnavailable is returned by the file front end when a source or destination
	// cannot be read or written.
	ErrIOUnavailable = errors.New("io unavailable")

	// ErrInputTooLarge is returned when the input length does not fit the 32-bit length header.
	ErrInputTooLarge = errors.New("input too large")

	// ErrUnknownSymbol is returned when a symbol has no entry in the code table.
	ErrUnknownSymbol = errors.New("symbol not in code table")

	// ErrChecksumMismatch is returned when verification finds that the decoded data
	// differs from the input.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrInvalidCompressionType is returned for an unsupported compression type.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrInvalidPaddingPolicy is returned for an unsupported padding policy.
	ErrInvalidPaddingPolicy = errors.New("invalid padding policy")
)
