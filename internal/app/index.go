package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"fastaidx-core/fasta"
	"fastaidx/internal/output"
	"fastaidx/internal/pipeline"
)

func (e *env) indexPath(file string) string { return file + e.cfg.IndexSuffix }

// loadIndex returns the persisted index of file when one exists and still
// matches the file's size and modification time. A missing index yields nil without error; a
// stale or unreadable one is reported and ignored.
func (e *env) loadIndex(file string) (*fasta.Index, fasta.Source) {
	path := e.indexPath(file)
	fh, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			e.warnf("cannot open index %s: %v", path, err)
		}
		return nil, fasta.Source{}
	}
	defer fh.Close()

	idx, src, err := fasta.ReadIndex(fh)
	if err != nil {
		e.warnf("ignoring unreadable index %s: %v", path, err)
		return nil, fasta.Source{}
	}
	st, err := os.Stat(file)
	if err != nil {
		return nil, fasta.Source{}
	}
	if err := src.Check(st); err != nil {
		e.warnf("%v; rebuilding", err)
		return nil, fasta.Source{}
	}
	e.log.Debug("loaded index", "path", path, "records", idx.Count())
	return idx, src
}

// openFile maps file with its persisted index when usable, building one
// in memory otherwise.
func (e *env) openFile(file string, usePersisted bool) (*fasta.File, error) {
	if usePersisted {
		if idx, src := e.loadIndex(file); idx != nil {
			f, err := fasta.OpenFileWithIndex(file, idx, src)
			if !errors.Is(err, fasta.ErrStaleIndex) {
				return f, err
			}
			e.warnf("%v; rebuilding", err)
		}
	}
	e.log.Debug("building index", "file", file)
	return fasta.OpenFile(file, fastaOptions(e.cfg)...)
}

// streamIndex returns an index for any readable input, including stdin
// and compressed files, preferring a fresh persisted index.
func (e *env) streamIndex(ctx context.Context, file string) (*fasta.Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if file != "-" {
		if idx, _ := e.loadIndex(file); idx != nil {
			return idx, nil
		}
	}
	rc, _, err := fasta.OpenStream(file)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	idx, err := fasta.Build(rc, fastaOptions(e.cfg)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return idx, nil
}

// writeAtomic writes path through a temporary file in the same directory.
func writeAtomic(path string, write func(*os.File) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()
	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

type indexed struct {
	file    string
	records int
	skipped bool
}

func (e *env) indexOne(ctx context.Context, file string) (indexed, error) {
	if err := ctx.Err(); err != nil {
		return indexed{}, err
	}
	if !e.opts.Force && !e.opts.FAI {
		if idx, _ := e.loadIndex(file); idx != nil {
			return indexed{file: file, records: idx.Count(), skipped: true}, nil
		}
	}
	st, err := os.Stat(file)
	if err != nil {
		return indexed{}, fmt.Errorf("%w: %w", fasta.ErrSourceRead, err)
	}
	f, err := fasta.OpenFile(file, fastaOptions(e.cfg)...)
	if err != nil {
		return indexed{}, err
	}
	defer f.Close()

	idx := f.Index()
	src := fasta.SourceOf(filepath.Base(file), st)
	if err := writeAtomic(e.indexPath(file), func(w *os.File) error { return idx.WriteJSONL(w, src) }); err != nil {
		return indexed{}, err
	}
	if e.opts.FAI {
		if err := writeAtomic(file+".fai", func(w *os.File) error { return output.WriteFAI(w, idx.Records()) }); err != nil {
			return indexed{}, err
		}
	}
	return indexed{file: file, records: idx.Count()}, nil
}

func runIndex(ctx context.Context, e *env) error {
	res, err := pipeline.BuildAll(ctx, e.pipeline(), e.opts.Files, e.indexOne)
	if err != nil {
		return err
	}
	for _, r := range res {
		if r.skipped {
			e.log.Info("index up to date", "file", r.file, "records", r.records)
			continue
		}
		e.log.Info("indexed", "file", r.file, "records", r.records, "index", e.indexPath(r.file))
	}
	return nil
}
