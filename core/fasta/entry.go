// core/fasta/entry.go
package fasta

import (
	"bytes"
	"strings"
)

// Entry is one FASTA record: a header line and its unwrapped sequence.
// Description is the whole header line, leading '>' included.
type Entry struct {
	ID          string
	Description string
	Seq         []byte
}

// Len returns the number of residues in the sequence.
func (e Entry) Len() int { return len(e.Seq) }

// IDFunc derives an identifier from a header line (leading '>' included,
// terminator stripped).
type IDFunc func(header []byte) string

// FirstToken returns the first whitespace-delimited token after '>'.
func FirstToken(header []byte) string {
	f := bytes.Fields(bytes.TrimPrefix(header, []byte{'>'}))
	if len(f) == 0 {
		return ""
	}
	return string(f[0])
}

// FieldID splits the header (without '>') on sep and returns field n.
// Headers that do not contain sep, or have fewer fields, yield the whole
// header. UniProt headers ("sp|P12345|NAME_HUMAN ...") use FieldID("|", 1).
func FieldID(sep string, n int) IDFunc {
	return func(header []byte) string {
		h := string(bytes.TrimPrefix(header, []byte{'>'}))
		if sep == "" || !strings.Contains(h, sep) {
			return h
		}
		fields := strings.Split(h, sep)
		if n < 0 || n >= len(fields) {
			return h
		}
		return fields[n]
	}
}

// Option configures Reader and Build.
type Option func(*options)

type options struct {
	id    IDFunc
	stats *LengthStats
}

func newOptions(opts []Option) options {
	o := options{id: FirstToken}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithIDFunc replaces the default FirstToken identifier extraction.
func WithIDFunc(fn IDFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.id = fn
		}
	}
}

// WithIDField is shorthand for WithIDFunc(FieldID(sep, n)).
func WithIDField(sep string, n int) Option {
	return WithIDFunc(FieldID(sep, n))
}

// WithLengthStats makes Build feed every record length into s once the
// index has been built successfully. Reader ignores it.
func WithLengthStats(s *LengthStats) Option {
	return func(o *options) { o.stats = s }
}

func isHeader(line []byte) bool { return len(line) > 0 && line[0] == '>' }

func isBlank(line []byte) bool { return len(bytes.TrimSpace(line)) == 0 }
