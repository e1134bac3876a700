package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newFS() (*flag.FlagSet, *bool, *string) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	b := fs.Bool("fai", false, "")
	s := fs.String("output", "fasta", "")
	return fs, b, s
}

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs, _, _ := newFS()
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"ref.fa", "--fai", "--output", "json", "chr1", "-", "--", "--odd-id"})
	if diff := cmp.Diff([]string{"--fai", "--output", "json"}, flagArgs); diff != "" {
		t.Fatalf("flags (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ref.fa", "chr1", "-", "--odd-id"}, posArgs); diff != "" {
		t.Fatalf("positionals (-want +got):\n%s", diff)
	}
}

func TestParseInterspersed(t *testing.T) {
	fs, fai, out := newFS()
	pos, err := ParseInterspersed(fs, []string{"a.fa", "--output=jsonl", "--fai", "b.fa"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !*fai || *out != "jsonl" || len(pos) != 2 {
		t.Fatalf("fai=%v output=%q pos=%v", *fai, *out, pos)
	}
	set := SetFlags(fs)
	if !set["fai"] || !set["output"] || len(set) != 2 {
		t.Fatalf("set flags: %v", set)
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.fa", "b.fa", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte(">x\nA\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fa"), "-"})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	want := []string{filepath.Join(dir, "a.fa"), filepath.Join(dir, "b.fa"), "-"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("expand (-want +got):\n%s", diff)
	}
	if _, err := ExpandPositionals([]string{filepath.Join(dir, "*.gz")}); err == nil {
		t.Fatalf("expected error for unmatched glob")
	}
}
