// core/fasta/path_ctx.go
package fasta

import (
	"context"
	"fmt"
)

// StreamPathCtx opens path (plain, gzip, zstd or "-" for stdin) and streams
// its records to emit. Cancellation via ctx is honored between records.
func StreamPathCtx(ctx context.Context, path string, emit func(Entry) error, opts ...Option) error {
	rc, _, err := OpenStream(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	if err := StreamCtx(ctx, rc, emit, opts...); err != nil {
		if ctx.Err() != nil {
			return err
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
