// Package errs defines the sentinel errors shared across saxvsm packages.
//
// Callers should match them with errors.Is; the packages that return them wrap
// the sentinels with additional context via fmt.Errorf and %w.
package errs

import "errors"

// Configuration and input validation errors, surfaced at fit time.
var (
	// ErrInvalidParameter indicates an invalid constructor parameter
	// (n_bins outside [2,26], unknown strategy, malformed alphabet or window).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInconsistentShape indicates that X and y do not describe the same
	// number of samples, or that X is ragged.
	ErrInconsistentShape = errors.New("inconsistent shape")

	// ErrInvalidTarget indicates a degenerate label set (fewer than 2 classes).
	ErrInvalidTarget = errors.New("invalid classification target")

	// ErrNotFitted indicates that inference was requested before Fit succeeded.
	ErrNotFitted = errors.New("classifier is not fitted")
)

// Model file errors, surfaced when reading or writing serialized models.
var (
	// ErrInvalidMagic indicates that the model file does not start with the
	// expected magic bytes.
	ErrInvalidMagic = errors.New("invalid model file magic")

	// ErrUnsupportedVersion indicates a model file version this build cannot read.
	ErrUnsupportedVersion = errors.New("unsupported model file version")

	// ErrInvalidHeaderSize indicates a truncated model file header.
	ErrInvalidHeaderSize = errors.New("invalid model header size")

	// ErrChecksumMismatch indicates that the payload checksum does not match
	// the checksum recorded in the header.
	ErrChecksumMismatch = errors.New("model payload checksum mismatch")

	// ErrInvalidPayload indicates a malformed or truncated model payload.
	ErrInvalidPayload = errors.New("invalid model payload")
)
