// core/faidx/errors.go
package faidx

import "errors"

// Error taxonomy. Failures are wrapped with record/line context and
// match these sentinels via errors.Is. Plain I/O errors from the
// underlying reader propagate unchanged.
var (
	// ErrMalformed reports a structural fault found while indexing:
	// inconsistent line widths inside a record, a duplicate sequence
	// name, or data before the first header.
	ErrMalformed = errors.New("malformed fasta")

	// ErrNotFound reports a sequence name absent from the index.
	ErrNotFound = errors.New("sequence not found")

	// ErrCoordinate reports a start/stop pair outside 1..length.
	// Bad coordinates are never clamped.
	ErrCoordinate = errors.New("invalid coordinates")
)
