package filter

import (
	"testing"

	"fastaidx-core/fasta"
)

func entry(id, desc, seq string) fasta.Entry {
	return fasta.Entry{ID: id, Description: desc, Seq: []byte(seq)}
}

func TestKeep(t *testing.T) {
	chr1 := entry("chr1", ">chr1 human", "ACGTACGT")
	plasmid := entry("pUC19", ">pUC19 vector", "AC")

	cases := []struct {
		src  string
		e    fasta.Entry
		want bool
	}{
		{"length > 4", chr1, true},
		{"length > 4", plasmid, false},
		{`id startsWith "chr"`, chr1, true},
		{`desc contains "vector"`, plasmid, true},
		{`seq matches "^AC"`, plasmid, true},
		{`length >= 2 && not (id startsWith "chr")`, plasmid, true},
	}
	for _, tc := range cases {
		f, err := Compile(tc.src)
		if err != nil {
			t.Fatalf("compile %q: %v", tc.src, err)
		}
		got, err := f.Keep(tc.e)
		if err != nil {
			t.Fatalf("keep %q: %v", tc.src, err)
		}
		if got != tc.want {
			t.Errorf("%q on %s = %v, want %v", tc.src, tc.e.ID, got, tc.want)
		}
	}
}

func TestEmptyKeepsEverything(t *testing.T) {
	f, err := Compile("")
	if err != nil || f != nil {
		t.Fatalf("empty expression: %v %v", f, err)
	}
	if keep, err := f.Keep(entry("a", ">a", "")); err != nil || !keep {
		t.Fatalf("nil filter must keep: %v %v", keep, err)
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{"length +", `length + 1`, "unknown_var > 1"} {
		if _, err := Compile(src); err == nil {
			t.Errorf("%q: expected compile error", src)
		}
	}
}
