// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"

	"fastaidx-core/fasta"

	"golang.org/x/sync/errgroup"
)

// Config controls how inputs are scanned.
type Config struct {
	Threads int            // concurrent index builds (<=0: all CPUs)
	Options []fasta.Option // identifier extraction etc.
}

func (c Config) threads(n int) int {
	t := c.Threads
	if t <= 0 {
		t = runtime.NumCPU()
	}
	return max(1, min(t, n))
}

// ForEachEntry streams every record of every file, in order, to visit.
// It returns the first error encountered (including context cancellation).
func ForEachEntry(ctx context.Context, cfg Config, files []string, visit func(file string, e fasta.Entry) error) error {
	for _, fn := range files {
		err := fasta.StreamPathCtx(ctx, fn, func(e fasta.Entry) error {
			return visit(fn, e)
		}, cfg.Options...)
		if err != nil {
			return err
		}
	}
	return nil
}

// BuildAll runs build for every file with at most cfg.Threads in flight.
// Results are returned in input order; the first failure cancels the rest.
func BuildAll[T any](ctx context.Context, cfg Config, files []string, build func(context.Context, string) (T, error)) ([]T, error) {
	out := make([]T, len(files))
	if len(files) == 0 {
		return out, nil
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.threads(len(files)))
	for i, fn := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := build(ctx, fn)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
