// core/fasta/lengths.go
package fasta

import (
	"slices"
)

// LengthCount is one bucket of a length distribution.
type LengthCount struct {
	Length int `json:"length" yaml:"length"`
	Count  int `json:"count" yaml:"count"`
}

// LengthStats accumulates sequence lengths. The zero value is ready to
// use. It is not safe for concurrent mutation.
type LengthStats struct {
	counts   map[int]int
	min, max int
	total    int
	sum      int64
}

// NewLengthStats returns an empty accumulator.
func NewLengthStats() *LengthStats { return &LengthStats{} }

// Observe records e's length.
func (s *LengthStats) Observe(e Entry) { s.ObserveLength(e.Len()) }

// ObserveLength records one sequence of length n.
func (s *LengthStats) ObserveLength(n int) {
	if s.counts == nil {
		s.counts = make(map[int]int)
	}
	s.counts[n]++
	if s.total == 0 || n < s.min {
		s.min = n
	}
	if s.total == 0 || n > s.max {
		s.max = n
	}
	s.total++
	s.sum += int64(n)
}

// Total is the number of observed sequences.
func (s *LengthStats) Total() int { return s.total }

// Sum is the number of residues over all observed sequences.
func (s *LengthStats) Sum() int64 { return s.sum }

// Max returns the longest observed length; ok is false when nothing has
// been observed.
func (s *LengthStats) Max() (n int, ok bool) { return s.max, s.total > 0 }

// Min returns the shortest observed length.
func (s *LengthStats) Min() (n int, ok bool) { return s.min, s.total > 0 }

// Mean returns the average length.
func (s *LengthStats) Mean() (float64, bool) {
	if s.total == 0 {
		return 0, false
	}
	return float64(s.sum) / float64(s.total), true
}

// N50 returns the length L such that sequences of length >= L hold at
// least half of all residues.
func (s *LengthStats) N50() (int, bool) {
	if s.total == 0 {
		return 0, false
	}
	d := s.Distribution()
	var acc int64
	for i := len(d) - 1; i >= 0; i-- {
		acc += int64(d[i].Length) * int64(d[i].Count)
		if 2*acc >= s.sum {
			return d[i].Length, true
		}
	}
	return d[0].Length, true
}

// Distribution returns a snapshot of the counts in ascending length order.
func (s *LengthStats) Distribution() []LengthCount {
	out := make([]LengthCount, 0, len(s.counts))
	for l, c := range s.counts {
		out = append(out, LengthCount{Length: l, Count: c})
	}
	slices.SortFunc(out, func(a, b LengthCount) int { return a.Length - b.Length })
	return out
}

// Map returns a copy of the counts keyed by length.
func (s *LengthStats) Map() map[int]int {
	m := make(map[int]int, len(s.counts))
	for l, c := range s.counts {
		m[l] = c
	}
	return m
}
