// Package pipeline drives FASTA files through the core library: streaming
// every record of every input to a visit callback, and building indexes for
// many files concurrently.
//
// Ordering is part of the contract: ForEachEntry visits files and records in
// input order, and BuildAll returns results in input order regardless of
// which worker finished first.
package pipeline
