// core/fasta/errors.go
package fasta

import "errors"

// Sentinel errors. Callers match with errors.Is; the returned errors wrap
// these with the offending line, identifier or range.
var (
	// ErrSourceRead wraps any failure of the underlying byte source.
	ErrSourceRead = errors.New("fasta: source read failed")

	// ErrMalformedInput reports content that cannot be ordered into records,
	// e.g. sequence data before the first header.
	ErrMalformedInput = errors.New("fasta: malformed input")

	// ErrInconsistentLineWidth is returned by Build when a non-final
	// sequence line is wrapped differently from the record's first line.
	ErrInconsistentLineWidth = errors.New("fasta: inconsistent line width")

	// ErrDuplicateIdentifier is returned by Build and ReadIndex.
	ErrDuplicateIdentifier = errors.New("fasta: duplicate identifier")

	ErrRangeOutOfBounds  = errors.New("fasta: range out of bounds")
	ErrUnknownIdentifier = errors.New("fasta: unknown identifier")

	// ErrNotSeekable is returned when positioned reads are requested on a
	// compressed or piped source.
	ErrNotSeekable = errors.New("fasta: source does not support positioned reads")

	// ErrStaleIndex reports a persisted index that no longer matches its file.
	ErrStaleIndex = errors.New("fasta: index does not match source")
)
