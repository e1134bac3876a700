package fasta

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFASTA(t *testing.T, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "x.fa")
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return fn
}

func TestOpenFile(t *testing.T) {
	f, err := OpenFile(writeFASTA(t, example))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	got, err := f.Fetch("seq1", 3, 6)
	if err != nil || string(got) != "TAC" {
		t.Fatalf("fetch = %q, %v", got, err)
	}
	desc, err := f.Describe("seq2")
	if err != nil || desc != ">seq2" {
		t.Fatalf("describe = %q, %v", desc, err)
	}
	e, err := f.Entry("seq1")
	if err != nil || string(e.Seq) != "ACGTACG" || e.Description != ">seq1 desc" {
		t.Fatalf("entry = %+v, %v", e, err)
	}
	if f.Index().Count() != 2 {
		t.Fatalf("count = %d", f.Index().Count())
	}
}

func TestOpenFileEmpty(t *testing.T) {
	f, err := OpenFile(writeFASTA(t, ""))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	if f.Index().Count() != 0 {
		t.Fatalf("want no records")
	}
}

func TestOpenFileRejectsCompressed(t *testing.T) {
	if _, err := OpenFile(writeGz(t, plain)); !errors.Is(err, ErrNotSeekable) {
		t.Fatalf("gzip: want ErrNotSeekable, got %v", err)
	}
	if _, err := OpenFile(writeZst(t, plain)); !errors.Is(err, ErrNotSeekable) {
		t.Fatalf("zstd: want ErrNotSeekable, got %v", err)
	}
}

func TestOpenFileBuildError(t *testing.T) {
	_, err := OpenFile(writeFASTA(t, ">a\nAC\n>a\nGG\n"))
	if !errors.Is(err, ErrDuplicateIdentifier) {
		t.Fatalf("want ErrDuplicateIdentifier, got %v", err)
	}
}

func TestOpenFileWithIndex(t *testing.T) {
	fn := writeFASTA(t, example)
	x := mustBuild(t, example)

	f, err := OpenFileWithIndex(fn, x, Source{Path: fn, Size: int64(len(example))})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	if got, _ := f.Fetch("seq2", 1, 2); string(got) != "T" {
		t.Fatalf("fetch = %q", got)
	}

	if _, err := OpenFileWithIndex(fn, x, Source{Path: fn, Size: 3}); !errors.Is(err, ErrStaleIndex) {
		t.Fatalf("want ErrStaleIndex, got %v", err)
	}
}

func TestFetchMany(t *testing.T) {
	f, err := OpenFile(writeFASTA(t, example))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	got, err := f.FetchMany(context.Background(), []string{"seq2", "seq1"}, 2)
	if err != nil {
		t.Fatalf("fetch many: %v", err)
	}
	if len(got) != 2 || string(got["seq1"].Seq) != "ACGTACG" || string(got["seq2"].Seq) != "TT" {
		t.Fatalf("unexpected entries %+v", got)
	}

	if _, err := f.FetchMany(context.Background(), []string{"seq1", "nope"}, 0); !errors.Is(err, ErrUnknownIdentifier) {
		t.Fatalf("want ErrUnknownIdentifier, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.FetchMany(ctx, []string{"seq1"}, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestNewFileOverReaderAt(t *testing.T) {
	x := mustBuild(t, example)
	f := NewFile(strings.NewReader(example), x)
	defer f.Close()

	got, err := f.FetchMany(context.Background(), []string{"seq1", "seq2"}, 0)
	if err != nil {
		t.Fatalf("fetch many: %v", err)
	}
	if string(got["seq1"].Seq) != "ACGTACG" || got["seq2"].Description != ">seq2" {
		t.Fatalf("unexpected entries %+v", got)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close of a borrowed source: %v", err)
	}
}
