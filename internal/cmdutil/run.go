package cmdutil

import (
	"context"

	"fastaidx-core/fasta"
	"fastaidx/internal/pipeline"
)

// RunStream streams every record of files through visit and hands kept
// outputs to send. It returns the number of kept outputs and the first
// error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	files []string,
	visit func(file string, e fasta.Entry) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachEntry(ctx, cfg, files, func(file string, e fasta.Entry) error {
		keep, out, vErr := visit(file, e)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
