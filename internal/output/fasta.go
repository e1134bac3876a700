package output

import (
	"fmt"
	"io"

	"fastaidx/pkg/api"
)

// RegionHeader is the header written for a fetched region: the bare id for
// a whole record, "id:start-end" otherwise.
func RegionHeader(r api.RegionV1, whole bool) string {
	if whole {
		return r.ID
	}
	return fmt.Sprintf("%s:%d-%d", r.ID, r.Start, r.End)
}

// WriteFASTA writes one record, wrapping the sequence every width residues
// (width <= 0 writes it on a single line).
func WriteFASTA(w io.Writer, header string, seq []byte, width int) error {
	if _, err := fmt.Fprintf(w, ">%s\n", header); err != nil {
		return err
	}
	if width <= 0 {
		width = max(len(seq), 1)
	}
	for off := 0; off < len(seq); off += width {
		end := min(off+width, len(seq))
		if _, err := w.Write(seq[off:end]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
