package app

import (
	"context"
	"slices"

	"fastaidx-core/fasta"
	"fastaidx/internal/cmdutil"
	"fastaidx/internal/filter"
	"fastaidx/internal/output"
	"fastaidx/internal/pipeline"
	"fastaidx/internal/writers"
)

// keepFunc adapts a compiled filter to cmdutil.RunStream.
func keepFunc[T any](flt *filter.Filter, out func(fasta.Entry) T) func(string, fasta.Entry) (bool, T, error) {
	return func(_ string, e fasta.Entry) (bool, T, error) {
		keep, err := flt.Keep(e)
		if err != nil {
			var zero T
			return false, zero, badInput(err)
		}
		return keep, out(e), nil
	}
}

func runStats(ctx context.Context, e *env) error {
	flt, err := filter.Compile(e.opts.Where)
	if err != nil {
		return badInput(err)
	}
	st := fasta.NewLengthStats()
	kept, err := cmdutil.RunStream(ctx, e.pipeline(), e.opts.Files,
		keepFunc(flt, fasta.Entry.Len),
		func(n int) error { st.ObserveLength(n); return nil })
	if err != nil {
		return err
	}
	e.log.Debug("stats", "kept", kept, "filter", flt.String())
	return writers.WriteStats(e.opts.Format, e.stdout, output.Stats(e.opts.Files, st))
}

func runIDs(ctx context.Context, e *env) error {
	flt, err := filter.Compile(e.opts.Where)
	if err != nil {
		return badInput(err)
	}
	var ids []string
	_, err = cmdutil.RunStream(ctx, e.pipeline(), e.opts.Files,
		keepFunc(flt, func(e fasta.Entry) string { return e.ID }),
		func(id string) error { ids = append(ids, id); return nil })
	if err != nil {
		return err
	}
	return output.WriteIDs(e.stdout, slices.Values(ids))
}

func runLengths(ctx context.Context, e *env) error {
	idxs, err := pipeline.BuildAll(ctx, e.pipeline(), e.opts.Files, e.streamIndex)
	if err != nil {
		return err
	}
	var recs []fasta.Record
	for _, idx := range idxs {
		recs = append(recs, idx.Records()...)
	}
	return output.WriteLengths(e.stdout, recs, e.opts.Header)
}
