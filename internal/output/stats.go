package output

import (
	"fmt"
	"io"
	"strconv"

	"fastaidx-core/fasta"
	"fastaidx/internal/jsonutil"
	"fastaidx/pkg/api"

	"github.com/goccy/go-yaml"
	"github.com/grailbio/base/tsv"
)

// Stats converts an accumulator into its wire form.
func Stats(files []string, s *fasta.LengthStats) api.StatsV1 {
	out := api.StatsV1{
		Files:        append([]string{}, files...),
		Sequences:    s.Total(),
		Residues:     s.Sum(),
		Distribution: []api.LengthCountV1{},
	}
	if v, ok := s.Min(); ok {
		out.Min = &v
	}
	if v, ok := s.Max(); ok {
		out.Max = &v
	}
	if v, ok := s.Mean(); ok {
		out.Mean = &v
	}
	if v, ok := s.N50(); ok {
		out.N50 = &v
	}
	for _, lc := range s.Distribution() {
		out.Distribution = append(out.Distribution, api.LengthCountV1{Length: lc.Length, Count: lc.Count})
	}
	return out
}

func optInt(p *int) string {
	if p == nil {
		return "NA"
	}
	return strconv.Itoa(*p)
}

func optFloat(p *float64) string {
	if p == nil {
		return "NA"
	}
	return strconv.FormatFloat(*p, 'f', 2, 64)
}

// WriteStatsText writes a human-readable summary followed by the
// distribution, shortest length first.
func WriteStatsText(w io.Writer, st api.StatsV1) error {
	_, err := fmt.Fprintf(w,
		"sequences\t%d\nresidues\t%d\nmin\t%s\nmax\t%s\nmean\t%s\nn50\t%s\n",
		st.Sequences, st.Residues, optInt(st.Min), optInt(st.Max), optFloat(st.Mean), optInt(st.N50))
	if err != nil {
		return err
	}
	if len(st.Distribution) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "\nlength\tcount"); err != nil {
		return err
	}
	for _, lc := range st.Distribution {
		if _, err := fmt.Fprintf(w, "%d\t%d\n", lc.Length, lc.Count); err != nil {
			return err
		}
	}
	return nil
}

// WriteStatsTSV writes only the distribution as a two-column table.
func WriteStatsTSV(w io.Writer, st api.StatsV1) error {
	tw := tsv.NewWriter(w)
	tw.WriteString("length")
	tw.WriteString("count")
	if err := tw.EndLine(); err != nil {
		return err
	}
	for _, lc := range st.Distribution {
		tw.WriteInt64(int64(lc.Length))
		tw.WriteInt64(int64(lc.Count))
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteStatsJSON writes the summary as indented JSON.
func WriteStatsJSON(w io.Writer, st api.StatsV1) error {
	return jsonutil.EncodePretty(w, st)
}

// WriteStatsYAML writes the summary as YAML. The distribution is a
// mapping from length to count in ascending length order.
func WriteStatsYAML(w io.Writer, st api.StatsV1) error {
	dist := make(yaml.MapSlice, 0, len(st.Distribution))
	for _, lc := range st.Distribution {
		dist = append(dist, yaml.MapItem{Key: lc.Length, Value: lc.Count})
	}
	doc := yaml.MapSlice{
		{Key: "files", Value: st.Files},
		{Key: "sequences", Value: st.Sequences},
		{Key: "residues", Value: st.Residues},
	}
	if st.Max != nil {
		doc = append(doc,
			yaml.MapItem{Key: "min", Value: *st.Min},
			yaml.MapItem{Key: "max", Value: *st.Max},
			yaml.MapItem{Key: "mean", Value: *st.Mean},
			yaml.MapItem{Key: "n50", Value: *st.N50},
		)
	}
	doc = append(doc, yaml.MapItem{Key: "distribution", Value: dist})
	b, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
