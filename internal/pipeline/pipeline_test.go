package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"fastaidx-core/fasta"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return fn
}

func TestForEachEntry_OrderAcrossFiles(t *testing.T) {
	a := write(t, "a.fa", ">a1\nAC\n>a2\nG\n")
	b := write(t, "b.fa", ">b1\nTTT\n")
	var got []string
	err := ForEachEntry(context.Background(), Config{}, []string{a, b}, func(file string, e fasta.Entry) error {
		got = append(got, filepath.Base(file)+":"+e.ID)
		return nil
	})
	if err != nil {
		t.Fatalf("pipeline err: %v", err)
	}
	if strings.Join(got, ",") != "a.fa:a1,a.fa:a2,b.fa:b1" {
		t.Fatalf("order: %v", got)
	}
}

func TestForEachEntry_IDOptions(t *testing.T) {
	a := write(t, "u.fa", ">sp|P1|X_HUMAN\nAC\n")
	var id string
	err := ForEachEntry(context.Background(), Config{Options: []fasta.Option{fasta.WithIDField("|", 1)}}, []string{a},
		func(_ string, e fasta.Entry) error { id = e.ID; return nil })
	if err != nil || id != "P1" {
		t.Fatalf("id = %q, err = %v", id, err)
	}
}

func TestForEachEntry_StopsOnError(t *testing.T) {
	a := write(t, "a.fa", ">a1\nAC\n>a2\nG\n")
	stop := errors.New("stop")
	n := 0
	err := ForEachEntry(context.Background(), Config{}, []string{a, a}, func(string, fasta.Entry) error {
		n++
		return stop
	})
	if !errors.Is(err, stop) || n != 1 {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestBuildAll_InputOrder(t *testing.T) {
	var files []string
	for i := 0; i < 6; i++ {
		files = append(files, write(t, fmt.Sprintf("f%d.fa", i), fmt.Sprintf(">s%d\nACGT\n", i)))
	}
	var inflight, peak atomic.Int32
	got, err := BuildAll(context.Background(), Config{Threads: 2}, files, func(_ context.Context, fn string) (string, error) {
		n := inflight.Add(1)
		defer inflight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		f, err := fasta.OpenFile(fn)
		if err != nil {
			return "", err
		}
		defer f.Close()
		for id := range f.Index().IDs() {
			return id, nil
		}
		return "", nil
	})
	if err != nil {
		t.Fatalf("build all: %v", err)
	}
	for i, id := range got {
		if id != fmt.Sprintf("s%d", i) {
			t.Fatalf("result %d = %q", i, id)
		}
	}
	if peak.Load() > 2 {
		t.Fatalf("more than 2 builds in flight: %d", peak.Load())
	}
}

func TestBuildAll_FirstError(t *testing.T) {
	good := write(t, "g.fa", ">a\nA\n")
	bad := write(t, "b.fa", ">a\nA\n>a\nC\n")
	_, err := BuildAll(context.Background(), Config{Threads: 1}, []string{good, bad}, func(_ context.Context, fn string) (*fasta.File, error) {
		return fasta.OpenFile(fn)
	})
	if !errors.Is(err, fasta.ErrDuplicateIdentifier) {
		t.Fatalf("want ErrDuplicateIdentifier, got %v", err)
	}
}
