package fasta

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestIndexJSONLRoundTrip(t *testing.T) {
	x := mustBuild(t, example)
	var buf bytes.Buffer
	if err := x.WriteJSONL(&buf, Source{Path: "ex.fa", Size: int64(len(example))}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != 3 {
		t.Fatalf("want header + one line per record, got %d lines:\n%s", lines, buf.String())
	}

	y, src, err := ReadIndex(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := Source{Path: "ex.fa", Size: int64(len(example)), Records: 2}
	if src != want {
		t.Fatalf("source = %+v, want %+v", src, want)
	}
	if diff := cmp.Diff(x.Records(), y.Records()); diff != "" {
		t.Fatalf("records (-built +loaded):\n%s", diff)
	}
	got, err := y.Fetch(strings.NewReader(example), "seq1", 3, 6)
	if err != nil || string(got) != "TAC" {
		t.Fatalf("fetch via loaded index = %q, %v", got, err)
	}
}

func TestReadIndexRejects(t *testing.T) {
	const hdr = `{"source":"a","size":20,"records":1}` + "\n"
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrMalformedInput},
		{"garbage", "not json\n", ErrMalformedInput},
		{"count mismatch", `{"source":"a","size":20,"records":2}` + "\n" + `{"id":"a","seq_offset":3}` + "\n", ErrMalformedInput},
		{"no width", hdr + `{"id":"a","seq_offset":3,"length":5}` + "\n", ErrMalformedInput},
		{"seq before desc", hdr + `{"id":"a","desc_offset":10,"seq_offset":3,"length":2,"line_bases":2,"line_width":3}` + "\n", ErrMalformedInput},
		{"negative desc offset", hdr + `{"id":"a","desc_offset":-4,"seq_offset":3}` + "\n", ErrMalformedInput},
		{"seq offset past size", hdr + `{"id":"a","desc_offset":0,"seq_offset":21}` + "\n", ErrMalformedInput},
		{"negative length", hdr + `{"id":"a","seq_offset":3,"length":-1,"line_bases":2,"line_width":3}` + "\n", ErrMalformedInput},
		{"width below bases", hdr + `{"id":"a","seq_offset":3,"length":4,"line_bases":4,"line_width":2}` + "\n", ErrMalformedInput},
		{"residues past size", hdr + `{"id":"a","seq_offset":3,"length":16,"line_bases":4,"line_width":5}` + "\n", ErrMalformedInput},
		{"huge line width", hdr + `{"id":"a","seq_offset":3,"length":8,"line_bases":4,"line_width":4000000000000}` + "\n", ErrMalformedInput},
		{"duplicate", `{"source":"a","size":20,"records":2}` + "\n" +
			`{"id":"a","seq_offset":3}` + "\n" + `{"id":"a","desc_offset":3,"seq_offset":6}` + "\n", ErrDuplicateIdentifier},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := ReadIndex(strings.NewReader(tc.in)); !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

func TestReadIndexAcceptsLastResidueAtEnd(t *testing.T) {
	// ">a\nACGT\nAC" is 10 bytes; the last residue sits at offset 9.
	in := `{"source":"a","size":10,"records":1}` + "\n" +
		`{"id":"a","seq_offset":3,"length":6,"line_bases":4,"line_width":5}` + "\n"
	x, _, err := ReadIndex(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	got, err := x.Fetch(strings.NewReader(">a\nACGT\nAC"), "a", 0, 6)
	if err != nil || string(got) != "ACGTAC" {
		t.Fatalf("fetch = %q, %v", got, err)
	}
	short := strings.Replace(in, `"size":10`, `"size":9`, 1)
	if _, _, err := ReadIndex(strings.NewReader(short)); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("want ErrMalformedInput for a truncated file, got %v", err)
	}
}

func TestDescribeRejectsInvertedOffsets(t *testing.T) {
	x, err := newIndex([]Record{{ID: "a", DescOffset: 10, SeqOffset: 3, Length: 2, LineBases: 2, LineWidth: 3}})
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	if _, err := x.Describe(strings.NewReader(strings.Repeat("x", 20)), "a"); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("want ErrMalformedInput, got %v", err)
	}
}

func TestSourceCheck(t *testing.T) {
	fn := writeFASTA(t, ">a\nACGT\n")
	fi, err := os.Stat(fn)
	if err != nil {
		t.Fatal(err)
	}
	src := SourceOf("x.fa", fi)
	if err := src.Check(fi); err != nil {
		t.Fatalf("check: %v", err)
	}

	// Same size, new contents.
	if err := os.WriteFile(fn, []byte(">a\nGGGG\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	later := fi.ModTime().Add(time.Second)
	if err := os.Chtimes(fn, later, later); err != nil {
		t.Fatal(err)
	}
	fi2, err := os.Stat(fn)
	if err != nil {
		t.Fatal(err)
	}
	if err := src.Check(fi2); !errors.Is(err, ErrStaleIndex) {
		t.Fatalf("same-size edit: want ErrStaleIndex, got %v", err)
	}

	if err := (Source{Path: "x.fa", Size: 3}).Check(fi2); !errors.Is(err, ErrStaleIndex) {
		t.Fatalf("size change: want ErrStaleIndex, got %v", err)
	}
	if err := (Source{Path: "x.fa", Size: fi2.Size()}).Check(fi2); err != nil {
		t.Fatalf("no recorded mtime: %v", err)
	}
}
