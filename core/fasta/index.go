// core/fasta/index.go
package fasta

import (
	"bytes"
	"fmt"
	"io"
	"iter"
)

// Record is the layout of one entry inside its source file.
type Record struct {
	ID         string `json:"id"`
	DescOffset int64  `json:"desc_offset"` // offset of the '>' byte
	SeqOffset  int64  `json:"seq_offset"`  // first byte after the header line
	Length     int    `json:"length"`
	LineBases  int    `json:"line_bases"` // residues per full line
	LineWidth  int    `json:"line_width"` // bytes per full line, terminator included
}

// Index maps identifiers to Records in file order. It is read-only once
// built and safe for concurrent use.
type Index struct {
	recs []Record
	pos  map[string]int
}

func newIndex(recs []Record) (*Index, error) {
	x := &Index{recs: recs, pos: make(map[string]int, len(recs))}
	for i, r := range recs {
		if j, dup := x.pos[r.ID]; dup {
			return nil, fmt.Errorf("%w: %q at offsets %d and %d", ErrDuplicateIdentifier, r.ID, recs[j].DescOffset, r.DescOffset)
		}
		x.pos[r.ID] = i
	}
	return x, nil
}

// builder accumulates the record currently being scanned.
type builder struct {
	recs  []Record
	cur   *Record
	lines int  // non-blank sequence lines seen in cur
	ended bool // a line that may only be final has been seen
}

func (b *builder) seqLine(line []byte, term, lineNo int) error {
	if len(line) == 0 {
		b.ended = true
		return nil
	}
	if b.ended {
		return fmt.Errorf("%w: %s: line %d follows a short line", ErrInconsistentLineWidth, b.cur.ID, lineNo)
	}
	r := b.cur
	b.lines++
	r.Length += len(line)
	if b.lines == 1 {
		r.LineBases, r.LineWidth = len(line), len(line)+term
		return nil
	}
	if len(line) > r.LineBases {
		return fmt.Errorf("%w: %s: line %d has %d bases, expected %d", ErrInconsistentLineWidth, r.ID, lineNo, len(line), r.LineBases)
	}
	if len(line) < r.LineBases || len(line)+term != r.LineWidth {
		b.ended = true
	}
	return nil
}

func (b *builder) start(id string, descOff, seqOff int64) {
	b.recs = append(b.recs, Record{ID: id, DescOffset: descOff, SeqOffset: seqOff})
	b.cur = &b.recs[len(b.recs)-1]
	b.lines, b.ended = 0, false
}

// Build scans r once and returns the index of its records. It fails with
// ErrMalformedInput, ErrInconsistentLineWidth, ErrDuplicateIdentifier or
// ErrSourceRead; no partial index is ever returned.
func Build(r io.Reader, opts ...Option) (*Index, error) {
	o := newOptions(opts)
	lr := newLineReader(r)
	var b builder
	for {
		line, start, term, err := lr.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch {
		case isHeader(line):
			b.start(o.id(line), start, lr.off)
		case b.cur == nil:
			if !isBlank(line) {
				return nil, fmt.Errorf("%w: line %d: sequence data before first header", ErrMalformedInput, lr.line)
			}
		default:
			if err := b.seqLine(line, term, lr.line); err != nil {
				return nil, err
			}
		}
	}

	x, err := newIndex(b.recs)
	if err != nil {
		return nil, err
	}
	if o.stats != nil {
		for _, rec := range x.recs {
			o.stats.ObserveLength(rec.Length)
		}
	}
	return x, nil
}

// Count returns the number of indexed records.
func (x *Index) Count() int { return len(x.recs) }

// Has reports whether id is indexed.
func (x *Index) Has(id string) bool {
	_, ok := x.pos[id]
	return ok
}

// Record returns the layout of id.
func (x *Index) Record(id string) (Record, error) {
	i, ok := x.pos[id]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownIdentifier, id)
	}
	return x.recs[i], nil
}

// Len returns the sequence length of id.
func (x *Index) Len(id string) (int, error) {
	r, err := x.Record(id)
	if err != nil {
		return 0, err
	}
	return r.Length, nil
}

// Records returns a copy of all records in file order.
func (x *Index) Records() []Record {
	return append([]Record(nil), x.recs...)
}

// IDs yields identifiers in file order. The sequence can be ranged over
// any number of times.
func (x *Index) IDs() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, r := range x.recs {
			if !yield(r.ID) {
				return
			}
		}
	}
}

// Fetch reads residues [start, end) of id from ra, touching only the
// lines that hold them. ra must be the source the index was built from.
func (x *Index) Fetch(ra io.ReaderAt, id string, start, end int) ([]byte, error) {
	rec, err := x.Record(id)
	if err != nil {
		return nil, err
	}
	ps, err := rec.Pieces(start, end)
	if err != nil {
		return nil, err
	}
	out := make([]byte, end-start)
	n := 0
	for _, p := range ps {
		if err := readFull(ra, out[n:n+p.Length], p.Offset); err != nil {
			return nil, fmt.Errorf("%s:%d-%d: %w", id, start, end, err)
		}
		n += p.Length
	}
	return out, nil
}

// Describe reads the header line of id from ra.
func (x *Index) Describe(ra io.ReaderAt, id string) (string, error) {
	rec, err := x.Record(id)
	if err != nil {
		return "", err
	}
	if rec.DescOffset < 0 || rec.SeqOffset <= rec.DescOffset {
		return "", fmt.Errorf("%w: %s: header offsets %d/%d out of order", ErrMalformedInput, id, rec.DescOffset, rec.SeqOffset)
	}
	buf := make([]byte, rec.SeqOffset-rec.DescOffset)
	if err := readFull(ra, buf, rec.DescOffset); err != nil {
		return "", fmt.Errorf("%s: %w", id, err)
	}
	if !isHeader(buf) {
		return "", fmt.Errorf("%w: %s: index does not point at a description line (offset %d)", ErrMalformedInput, id, rec.DescOffset)
	}
	return string(bytes.TrimRight(buf, "\r\n")), nil
}

// Entry reads the complete record for id.
func (x *Index) Entry(ra io.ReaderAt, id string) (Entry, error) {
	desc, err := x.Describe(ra, id)
	if err != nil {
		return Entry{}, err
	}
	n, _ := x.Len(id)
	seq, err := x.Fetch(ra, id, 0, n)
	if err != nil {
		return Entry{}, err
	}
	return Entry{ID: id, Description: desc, Seq: seq}, nil
}

func readFull(ra io.ReaderAt, p []byte, off int64) error {
	n, err := ra.ReadAt(p, off)
	if n == len(p) {
		return nil
	}
	if err == nil || err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w: %d bytes at offset %d: %w", ErrSourceRead, len(p), off, err)
}
