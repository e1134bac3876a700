package output

import (
	"io"
	"iter"

	"fastaidx-core/fasta"

	"github.com/grailbio/base/tsv"
)

// WriteFAI writes records in the samtools faidx layout:
// name, length, offset, linebases, linewidth.
func WriteFAI(w io.Writer, recs []fasta.Record) error {
	tw := tsv.NewWriter(w)
	for _, r := range recs {
		tw.WriteString(r.ID)
		tw.WriteInt64(int64(r.Length))
		tw.WriteInt64(r.SeqOffset)
		tw.WriteInt64(int64(r.LineBases))
		tw.WriteInt64(int64(r.LineWidth))
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteLengths writes "id<TAB>length" rows, with an optional header.
func WriteLengths(w io.Writer, recs []fasta.Record, header bool) error {
	tw := tsv.NewWriter(w)
	if header {
		tw.WriteString("id")
		tw.WriteString("length")
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	for _, r := range recs {
		tw.WriteString(r.ID)
		tw.WriteInt64(int64(r.Length))
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteIDs writes one identifier per line.
func WriteIDs(w io.Writer, ids iter.Seq[string]) error {
	tw := tsv.NewWriter(w)
	for id := range ids {
		tw.WriteString(id)
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}
