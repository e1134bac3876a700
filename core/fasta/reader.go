// core/fasta/reader.go
package fasta

import (
	"bytes"
	"fmt"
	"io"
	"iter"
)

// Reader is a forward-only FASTA lexer. It yields one Entry at a time and
// cannot be rewound; reopen the source for a second pass.
type Reader struct {
	lr     *lineReader
	opts   options
	header []byte // header of the next record, already consumed
	err    error  // sticky
}

// NewReader returns a Reader over r. The Reader never closes r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	return &Reader{lr: newLineReader(r), opts: newOptions(opts)}
}

// Next returns the next record, or io.EOF when the input is exhausted.
// Errors are sticky: once Next fails it keeps returning the same error.
func (r *Reader) Next() (Entry, error) {
	if r.err != nil {
		return Entry{}, r.err
	}
	for r.header == nil {
		line, _, _, err := r.lr.next()
		if err != nil {
			r.err = err
			return Entry{}, err
		}
		if isHeader(line) {
			r.header = bytes.Clone(line)
			break
		}
		if isBlank(line) {
			continue
		}
		r.err = fmt.Errorf("%w: line %d: sequence data before first header", ErrMalformedInput, r.lr.line)
		return Entry{}, r.err
	}

	hdr := r.header
	r.header = nil
	seq := []byte{}
	for {
		line, _, _, err := r.lr.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			r.err = err
			return Entry{}, err
		}
		if isHeader(line) {
			r.header = bytes.Clone(line)
			break
		}
		seq = append(seq, line...)
	}
	return Entry{ID: r.opts.id(hdr), Description: string(hdr), Seq: seq}, nil
}

// All adapts Next to a range-over-func iterator. Iteration stops after
// the first error, which is yielded with a zero Entry. Like the Reader
// itself, the sequence is single-use.
func (r *Reader) All() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		for {
			e, err := r.Next()
			if err == io.EOF {
				return
			}
			if !yield(e, err) || err != nil {
				return
			}
		}
	}
}

// ReadAll drains r into a slice. Convenient for tests and small files.
func ReadAll(r io.Reader, opts ...Option) ([]Entry, error) {
	var out []Entry
	for e, err := range NewReader(r, opts...).All() {
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
