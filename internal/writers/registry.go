// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"slices"

	"fastaidx/pkg/api"
)

// Writer registries (format → handler). Registered in init() blocks of the
// stats and region writer files.
var (
	StatsWriters  = map[string]func(io.Writer, api.StatsV1) error{}
	RegionWriters = map[string]func(io.Writer, RegionOptions) RegionSink{}
)

// Register helpers (idempotent last-wins)
func RegisterStats(format string, fn func(io.Writer, api.StatsV1) error) { StatsWriters[format] = fn }
func RegisterRegions(format string, fn func(io.Writer, RegionOptions) RegionSink) {
	RegionWriters[format] = fn
}

// WriteStats dispatches to the writer registered for format.
func WriteStats(format string, w io.Writer, st api.StatsV1) error {
	fn, ok := StatsWriters[format]
	if !ok {
		return fmt.Errorf("unknown stats format %q (no writer registered)", format)
	}
	return fn(w, st)
}

// NewRegionSink returns the streaming region writer registered for format.
func NewRegionSink(format string, w io.Writer, opt RegionOptions) (RegionSink, error) {
	fn, ok := RegionWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown region format %q (no writer registered)", format)
	}
	return fn(w, opt), nil
}

// Formats lists the registered names of a registry, sorted.
func Formats[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
