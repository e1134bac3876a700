package fasta

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStreamPathCtx_CancelImmediately_YieldsNoRecords(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "x.fa")
	if err := os.WriteFile(fn, []byte(">s\nACGT\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already canceled

	n := 0
	err := StreamPathCtx(ctx, fn, func(Entry) error { n++; return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 records due to immediate cancel, got %d", n)
	}
}

func TestStreamCtx_EmitErrorStops(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := StreamFromReader(strings.NewReader(plain), func(Entry) error {
		n++
		return stop
	})
	if !errors.Is(err, stop) || n != 1 {
		t.Fatalf("want stop after 1 record, got n=%d err=%v", n, err)
	}
}

func TestStreamPathCtx_ErrorNamesFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.fa")
	if err := os.WriteFile(fn, []byte("ACGT\n>s\nA\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	err := StreamPathCtx(context.Background(), fn, func(Entry) error { return nil })
	if !errors.Is(err, ErrMalformedInput) || !strings.Contains(err.Error(), "bad.fa") {
		t.Fatalf("want malformed error naming the file, got %v", err)
	}
}

func TestStreamPathCtx_Gzip(t *testing.T) {
	var got []string
	err := StreamPathCtx(context.Background(), writeGz(t, plain), func(e Entry) error {
		got = append(got, e.ID+"="+string(e.Seq))
		return nil
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if strings.Join(got, ",") != "seq1=ACGT,seq2=NNnn" {
		t.Fatalf("unexpected records %v", got)
	}
}
