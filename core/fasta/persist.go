// core/fasta/persist.go
package fasta

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// Source identifies the file an index was built from.
type Source struct {
	Path    string `json:"source"`
	Size    int64  `json:"size"`
	ModTime int64  `json:"mtime,omitempty"` // unix nanoseconds; 0 skips the check
	Records int    `json:"records"`
}

// SourceOf describes the file behind fi.
func SourceOf(path string, fi fs.FileInfo) Source {
	return Source{Path: path, Size: fi.Size(), ModTime: fi.ModTime().UnixNano()}
}

// Check returns ErrStaleIndex when fi no longer matches the recorded size
// or modification time.
func (s Source) Check(fi fs.FileInfo) error {
	if s.Size != fi.Size() {
		return fmt.Errorf("%w: %s was %d bytes when indexed, now %d", ErrStaleIndex, s.Path, s.Size, fi.Size())
	}
	if s.ModTime != 0 && s.ModTime != fi.ModTime().UnixNano() {
		return fmt.Errorf("%w: %s modified since it was indexed", ErrStaleIndex, s.Path)
	}
	return nil
}

// checkRecord rejects layouts that cannot describe a file of size bytes.
func checkRecord(r Record, size int64) error {
	bad := func(why string) error {
		return fmt.Errorf("%w: index record %q: %s", ErrMalformedInput, r.ID, why)
	}
	switch {
	case r.DescOffset < 0 || r.SeqOffset <= r.DescOffset || r.SeqOffset > size:
		return bad(fmt.Sprintf("offsets %d/%d outside a %d byte file", r.DescOffset, r.SeqOffset, size))
	case r.Length < 0 || r.LineBases < 0 || r.LineWidth < r.LineBases:
		return bad("negative length or line width below line bases")
	case r.Length == 0:
		return nil
	case r.LineBases == 0:
		return bad("no line width")
	case int64(r.Length) > size-r.SeqOffset || int64(r.LineWidth) > size:
		return bad("sequence longer than the file")
	}
	lines := int64(r.Length-1) / int64(r.LineBases)
	if lines > 0 && int64(r.LineWidth) > (size-r.SeqOffset)/lines {
		return bad("sequence runs past the end of the file")
	}
	last := r.SeqOffset + lines*int64(r.LineWidth) + int64((r.Length-1)%r.LineBases)
	if last >= size {
		return bad(fmt.Sprintf("last residue at offset %d past the end of the file", last))
	}
	return nil
}

// WriteJSONL writes the index as one JSON header line describing src
// followed by one JSON object per record, in file order.
func (x *Index) WriteJSONL(w io.Writer, src Source) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	enc := json.NewEncoder(bw)
	src.Records = len(x.recs)
	if err := enc.Encode(src); err != nil {
		return err
	}
	for i := range x.recs {
		if err := enc.Encode(&x.recs[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadIndex reconstructs an index written by WriteJSONL without touching
// the FASTA file itself. Every record must fit inside the recorded size.
func ReadIndex(r io.Reader) (*Index, Source, error) {
	dec := json.NewDecoder(bufio.NewReader(r))
	var src Source
	if err := dec.Decode(&src); err != nil {
		return nil, src, fmt.Errorf("%w: index header: %w", ErrMalformedInput, err)
	}
	recs := make([]Record, 0, src.Records)
	for {
		var rec Record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, src, fmt.Errorf("%w: index record %d: %w", ErrMalformedInput, len(recs)+1, err)
		}
		if err := checkRecord(rec, src.Size); err != nil {
			return nil, src, err
		}
		recs = append(recs, rec)
	}
	if len(recs) != src.Records {
		return nil, src, fmt.Errorf("%w: index header announces %d records, found %d", ErrMalformedInput, src.Records, len(recs))
	}
	x, err := newIndex(recs)
	if err != nil {
		return nil, src, err
	}
	return x, src, nil
}
