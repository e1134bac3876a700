package app

import (
	"context"
	"strings"

	"fastaidx-core/fasta"
	"fastaidx/internal/cli"
	"fastaidx/internal/writers"
	"fastaidx/pkg/api"
)

func runFetch(ctx context.Context, e *env) error {
	file := e.opts.Files[0]
	f, err := e.openFile(file, !e.opts.NoIndex)
	if err != nil {
		return err
	}
	defer f.Close()

	sink, err := writers.NewRegionSink(e.opts.Output, e.stdout, writers.RegionOptions{LineWidth: e.cfg.LineWidth})
	if err != nil {
		return badInput(err)
	}
	err = fetchRegions(ctx, e, f, file, sink)
	if cerr := sink.Close(); err == nil {
		err = cerr
	}
	return err
}

func fetchRegions(ctx context.Context, e *env, f *fasta.File, file string, sink writers.RegionSink) error {
	for _, r := range e.opts.Regions {
		if err := ctx.Err(); err != nil {
			return err
		}
		reg, err := fetchRegion(e, f, file, r)
		if err != nil {
			return err
		}
		if err := sink.Write(reg, r.Whole); err != nil {
			return err
		}
	}
	return nil
}

func fetchRegion(e *env, f *fasta.File, file string, r cli.Region) (api.RegionV1, error) {
	n, err := f.Index().Len(r.ID)
	if err != nil {
		return api.RegionV1{}, err
	}
	start, end := r.Span(n)
	seq, err := f.Fetch(r.ID, start, end)
	if err != nil {
		return api.RegionV1{}, err
	}
	reg := api.RegionV1{ID: r.ID, Start: start, End: end, Length: end - start, Seq: string(seq)}
	if e.opts.Output != "fasta" {
		desc, err := f.Describe(r.ID)
		if err != nil {
			return api.RegionV1{}, err
		}
		reg.Description = strings.TrimPrefix(desc, ">")
		reg.SourceFile = file
	}
	return reg, nil
}
