package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// Region is one fetch request. Coordinates are zero-based, end exclusive.
type Region struct {
	ID         string
	Start, End int
	Whole      bool // no coordinates: the complete record
	OpenEnd    bool // "ID:START-": through the end of the record
}

// ParseRegion accepts "ID", "ID:START-END" and "ID:START-". Identifiers may
// contain ':'; only a trailing ":START-END" suffix is read as coordinates.
func ParseRegion(s string) (Region, error) {
	if s == "" {
		return Region{}, fmt.Errorf("empty region")
	}
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return Region{ID: s, Whole: true}, nil
	}
	id, span := s[:i], s[i+1:]
	from, to, ok := strings.Cut(span, "-")
	start, err := strconv.Atoi(from)
	if !ok || err != nil || id == "" {
		return Region{ID: s, Whole: true}, nil
	}
	if start < 0 {
		return Region{}, fmt.Errorf("region %q: negative start", s)
	}
	if to == "" {
		return Region{ID: id, Start: start, OpenEnd: true}, nil
	}
	end, err := strconv.Atoi(to)
	if err != nil {
		return Region{}, fmt.Errorf("region %q: bad end %q", s, to)
	}
	if end < start {
		return Region{}, fmt.Errorf("region %q: end before start", s)
	}
	return Region{ID: id, Start: start, End: end}, nil
}

// Span resolves the region against a record of the given length.
func (r Region) Span(length int) (start, end int) {
	switch {
	case r.Whole:
		return 0, length
	case r.OpenEnd:
		return r.Start, max(r.Start, length)
	}
	return r.Start, r.End
}

func (r Region) String() string {
	switch {
	case r.Whole:
		return r.ID
	case r.OpenEnd:
		return fmt.Sprintf("%s:%d-", r.ID, r.Start)
	}
	return fmt.Sprintf("%s:%d-%d", r.ID, r.Start, r.End)
}
