// Package filter compiles boolean record predicates such as
//
//	length >= 1000 && id startsWith "chr"
//
// Available variables: id, desc (full header line), length, seq.
package filter

import (
	"fmt"

	"fastaidx-core/fasta"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the evaluation environment of one record.
type Env struct {
	ID   string `expr:"id"`
	Desc string `expr:"desc"`
	Len  int    `expr:"length"`
	Seq  string `expr:"seq"`
}

// Filter is a compiled predicate. The zero value and nil keep everything.
type Filter struct {
	src  string
	prog *vm.Program
}

// Compile parses src. An empty expression yields a nil Filter.
func Compile(src string) (*Filter, error) {
	if src == "" {
		return nil, nil
	}
	prog, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", src, err)
	}
	return &Filter{src: src, prog: prog}, nil
}

// Keep evaluates the predicate against e.
func (f *Filter) Keep(e fasta.Entry) (bool, error) {
	if f == nil || f.prog == nil {
		return true, nil
	}
	out, err := expr.Run(f.prog, Env{ID: e.ID, Desc: e.Description, Len: e.Len(), Seq: string(e.Seq)})
	if err != nil {
		return false, fmt.Errorf("filter %q on %s: %w", f.src, e.ID, err)
	}
	keep, _ := out.(bool)
	return keep, nil
}

func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.src
}
