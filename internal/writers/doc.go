// Package writers turns query results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (FASTA wrapping, JSON/JSONL/YAML/TSV).
//   - The core fasta package stays I/O-shape agnostic; the app only picks a format.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
