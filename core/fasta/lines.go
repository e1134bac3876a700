// core/fasta/lines.go
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// lineReader splits a byte stream into lines while tracking absolute
// offsets. Both Reader and Build sit on top of it so they agree on
// what a line is.
type lineReader struct {
	br   *bufio.Reader
	buf  []byte
	off  int64 // offset of the next unread byte
	line int   // 1-based number of the last returned line
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{br: bufio.NewReaderSize(r, 64*1024)}
}

// next returns the next line without its terminator, the offset of its
// first byte and the terminator width (0 for an unterminated last line,
// 1 for "\n", 2 for "\r\n"). The returned slice is only valid until the
// following call. io.EOF is returned once the input is exhausted.
func (lr *lineReader) next() (line []byte, start int64, term int, err error) {
	start = lr.off
	lr.buf = lr.buf[:0]
	for {
		frag, e := lr.br.ReadSlice('\n')
		lr.buf = append(lr.buf, frag...)
		if errors.Is(e, bufio.ErrBufferFull) {
			continue
		}
		if e != nil && e != io.EOF {
			return nil, start, 0, fmt.Errorf("%w: after line %d: %w", ErrSourceRead, lr.line, e)
		}
		if e == io.EOF && len(lr.buf) == 0 {
			return nil, start, 0, io.EOF
		}
		break
	}
	lr.off += int64(len(lr.buf))
	lr.line++

	line = lr.buf
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line, term = line[:n-1], 1
		if n > 1 && line[n-2] == '\r' {
			line, term = line[:n-2], 2
		}
	}
	return line, start, term, nil
}
