package writers

import (
	"io"

	"fastaidx/internal/jsonlutil"
	"fastaidx/internal/jsonutil"
	"fastaidx/internal/output"
	"fastaidx/pkg/api"
)

// RegionOptions controls region rendering.
type RegionOptions struct {
	LineWidth int // FASTA wrap width; 0 = single line
}

// RegionSink receives fetched regions one at a time. whole marks a region
// spanning its complete record. Close flushes buffered formats.
type RegionSink interface {
	Write(r api.RegionV1, whole bool) error
	Close() error
}

func init() {
	RegisterRegions("fasta", func(w io.Writer, o RegionOptions) RegionSink { return &fastaSink{w: w, width: o.LineWidth} })
	RegisterRegions("json", func(w io.Writer, _ RegionOptions) RegionSink { return &jsonSink{w: w} })
	RegisterRegions("jsonl", func(w io.Writer, _ RegionOptions) RegionSink {
		in, done := jsonlutil.Start[api.RegionV1](w, 16, IsBrokenPipe)
		return &jsonlSink{in: in, done: done}
	})
}

type fastaSink struct {
	w     io.Writer
	width int
}

func (s *fastaSink) Write(r api.RegionV1, whole bool) error {
	return output.WriteFASTA(s.w, output.RegionHeader(r, whole), []byte(r.Seq), s.width)
}

func (s *fastaSink) Close() error { return nil }

type jsonSink struct {
	w    io.Writer
	list []api.RegionV1
}

func (s *jsonSink) Write(r api.RegionV1, _ bool) error {
	s.list = append(s.list, r)
	return nil
}

func (s *jsonSink) Close() error {
	if s.list == nil {
		s.list = []api.RegionV1{}
	}
	return jsonutil.EncodePretty(s.w, s.list)
}

type jsonlSink struct {
	in   chan<- api.RegionV1
	done <-chan error
}

func (s *jsonlSink) Write(r api.RegionV1, _ bool) error {
	s.in <- r
	return nil
}

func (s *jsonlSink) Close() error {
	close(s.in)
	return <-s.done
}
