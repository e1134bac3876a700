// core/fasta/pieces.go
package fasta

import "fmt"

// Piece is one contiguous run of residues inside a single physical line.
type Piece struct {
	Offset int64 // absolute file offset
	Length int
}

// Pieces translates the logical range [start, end) of r's sequence into
// the byte ranges holding it, one per physical line touched, in order.
// An empty range yields nil.
func (r Record) Pieces(start, end int) ([]Piece, error) {
	if start < 0 || end < start || end > r.Length {
		return nil, fmt.Errorf("%w: %s:%d-%d (length %d)", ErrRangeOutOfBounds, r.ID, start, end, r.Length)
	}
	if start == end {
		return nil, nil
	}

	bases, width := r.LineBases, int64(r.LineWidth)
	if bases <= 0 {
		// unwrapped; only reachable for hand-built records
		bases, width = r.Length, int64(r.Length)
	}

	ps := make([]Piece, 0, (end-1)/bases-start/bases+1)
	for p := start; p < end; {
		line, col := p/bases, p%bases
		n := min(bases-col, end-p)
		ps = append(ps, Piece{
			Offset: r.SeqOffset + int64(line)*width + int64(col),
			Length: n,
		})
		p += n
	}
	return ps, nil
}

