// core/fasta/stream.go
package fasta

import (
	"context"
	"io"
)

// StreamCtx parses FASTA from r and calls emit for every record in file
// order. It is cancelable: ctx is checked between records. A non-nil error
// from emit stops the scan and is returned as is.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Entry) error, opts ...Option) error {
	rd := NewReader(r, opts...)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		e, err := rd.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := emit(e); err != nil {
			return err
		}
	}
}

// StreamFromReader is StreamCtx with a background context.
func StreamFromReader(r io.Reader, emit func(Entry) error, opts ...Option) error {
	return StreamCtx(context.Background(), r, emit, opts...)
}
