// core/fasta/file.go
package fasta

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/exp/mmap"
	"golang.org/x/sync/errgroup"
)

// File pairs an Index with the positioned-read source it describes.
// Queries are safe for concurrent use.
type File struct {
	ra  io.ReaderAt
	idx *Index

	closer io.Closer
}

// NewFile wraps an existing source and index. The caller keeps ownership
// of ra; Close on the returned File is a no-op.
func NewFile(ra io.ReaderAt, idx *Index) *File {
	return &File{ra: ra, idx: idx}
}

// OpenFile memory-maps path and builds its index with a single scan.
// Compressed files are rejected with ErrNotSeekable.
func OpenFile(path string, opts ...Option) (*File, error) {
	return openFile(path, func(ra *mmap.ReaderAt, _ os.FileInfo) (*Index, error) {
		return Build(io.NewSectionReader(ra, 0, int64(ra.Len())), opts...)
	})
}

// OpenFileWithIndex memory-maps path and pairs it with a previously built
// index. src is checked against the file's size and modification time.
func OpenFileWithIndex(path string, idx *Index, src Source) (*File, error) {
	return openFile(path, func(_ *mmap.ReaderAt, fi os.FileInfo) (*Index, error) {
		if err := src.Check(fi); err != nil {
			return nil, err
		}
		return idx, nil
	})
}

func openFile(path string, index func(*mmap.ReaderAt, os.FileInfo) (*Index, error)) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	fi, err := fh.Stat()
	if err == nil {
		err = checkSeekable(path, fh)
	} else {
		err = fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	_ = fh.Close()
	if err != nil {
		return nil, err
	}

	ra, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	idx, err := index(ra, fi)
	if err != nil {
		_ = ra.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &File{ra: ra, idx: idx, closer: ra}, nil
}

// Close releases the mapping. Slices returned by Fetch stay valid.
func (f *File) Close() error {
	if f.closer == nil {
		return nil
	}
	return f.closer.Close()
}

// Index returns the underlying index.
func (f *File) Index() *Index { return f.idx }

func (f *File) Fetch(id string, start, end int) ([]byte, error) {
	return f.idx.Fetch(f.ra, id, start, end)
}

func (f *File) Describe(id string) (string, error) { return f.idx.Describe(f.ra, id) }

func (f *File) Entry(id string) (Entry, error) { return f.idx.Entry(f.ra, id) }

// FetchMany reads the complete records for ids concurrently, at most
// limit at a time (limit <= 0 means unbounded). Unknown ids fail the call.
func (f *File) FetchMany(ctx context.Context, ids []string, limit int) (map[string]Entry, error) {
	var (
		mu  sync.Mutex
		out = make(map[string]Entry, len(ids))
	)
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e, err := f.Entry(id)
			if err != nil {
				return err
			}
			mu.Lock()
			out[id] = e
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
