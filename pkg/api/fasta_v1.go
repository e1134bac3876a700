// pkg/api/fasta_v1.go
package api

// RegionV1 is the stable JSON/JSONL schema for a fetched region.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Start/End are zero-based, half-open.
type RegionV1 struct {
	ID          string `json:"id"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Length      int    `json:"length"`
	Seq         string `json:"seq"`
	Description string `json:"description,omitempty"`
	SourceFile  string `json:"source_file,omitempty"`
}

// LengthCountV1 is one bucket of a length distribution.
type LengthCountV1 struct {
	Length int `json:"length" yaml:"length"`
	Count  int `json:"count" yaml:"count"`
}

// StatsV1 summarizes the sequences of one or more files. Min, Max, Mean
// and N50 are absent when no sequence was observed.
type StatsV1 struct {
	Files        []string        `json:"files"`
	Sequences    int             `json:"sequences"`
	Residues     int64           `json:"residues"`
	Min          *int            `json:"min,omitempty"`
	Max          *int            `json:"max,omitempty"`
	Mean         *float64        `json:"mean,omitempty"`
	N50          *int            `json:"n50,omitempty"`
	Distribution []LengthCountV1 `json:"distribution"`
}

