// core/fasta/open.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Compression describes how a stream source is encoded.
type Compression int

const (
	Plain Compression = iota
	Gzip
	Zstd
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "plain"
	}
}

// sniff detects compression by magic number, falling back to the suffix.
func sniff(path string, head []byte) Compression {
	switch {
	case bytes.HasPrefix(head, gzipMagic) || strings.HasSuffix(path, ".gz"):
		return Gzip
	case bytes.HasPrefix(head, zstdMagic) || strings.HasSuffix(path, ".zst"):
		return Zstd
	}
	return Plain
}

// OpenStream opens path for a forward pass. "-" is stdin (never closed by
// the returned ReadCloser); gzip and zstd are decoded transparently.
func OpenStream(path string) (io.ReadCloser, Compression, error) {
	var (
		src    io.Reader
		closer io.Closer
	)
	if path == "-" {
		src, closer = os.Stdin, io.NopCloser(nil)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, Plain, fmt.Errorf("%w: %w", ErrSourceRead, err)
		}
		src, closer = fh, fh
	}

	br := bufio.NewReader(src)
	head, _ := br.Peek(len(zstdMagic))
	kind := sniff(path, head)
	switch kind {
	case Gzip:
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = closer.Close()
			return nil, kind, fmt.Errorf("%w: %s: %w", ErrSourceRead, path, err)
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, closer}}, kind, nil
	case Zstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			_ = closer.Close()
			return nil, kind, fmt.Errorf("%w: %s: %w", ErrSourceRead, path, err)
		}
		release := closerFunc(func() error { zr.Close(); return nil })
		return &multiReadCloser{Reader: zr, closers: []io.Closer{release, closer}}, kind, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{closer}}, kind, nil
}

// checkSeekable refuses compressed files for positioned reads.
func checkSeekable(path string, f *os.File) error {
	head := make([]byte, len(zstdMagic))
	n, err := f.ReadAt(head, 0)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%w: %s: %w", ErrSourceRead, path, err)
	}
	if kind := sniff(path, head[:n]); kind != Plain {
		return fmt.Errorf("%w: %s is %s compressed", ErrNotSeekable, path, kind)
	}
	return nil
}
