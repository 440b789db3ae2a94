// Package termutil renders value.V's Display/Explain forms to a sink.
// Trimmed from a richer interactive-shell printer down to the part this
// module actually needs: batch and in-memory output. There is no
// interactive paging, no terminal, no subprocess pipe here — nothing in
// this analyzer drives a terminal session.
package termutil

import (
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
)

// Printer is the rendering sink Display/Explain write through.
type Printer interface {
	Write(data []byte) (int, error)
	WriteString(data string)
	WriteInt(v int64)

	// Ok reports whether every Write so far has succeeded.
	Ok() bool
	Close()
}

// batchPrinter writes straight through to an underlying strings.Builder
// with no paging or flow control.
type batchPrinter struct {
	buf *strings.Builder
	err errors.Once
}

func (p *batchPrinter) Write(data []byte) (int, error) {
	n, err := p.buf.Write(data)
	if err != nil {
		p.err.Set(err)
	}
	return n, err
}

func (p *batchPrinter) WriteString(data string) {
	p.Write([]byte(data)) // nolint: errcheck
}

func (p *batchPrinter) WriteInt(v int64) {
	var fmtBuf [24]byte
	p.Write(strconv.AppendInt(fmtBuf[:0], v, 10)) // nolint: errcheck
}

func (p *batchPrinter) Ok() bool {
	return p.err.Err() == nil
}

func (p *batchPrinter) Close() {}

// BufferPrinter is an in-memory Printer. Explain/Display tests render into
// one of these and assert against String(), rather than against a file or
// terminal.
type BufferPrinter struct {
	batchPrinter
	owned strings.Builder
}

// NewBufferPrinter creates a new, empty BufferPrinter.
func NewBufferPrinter() *BufferPrinter {
	p := &BufferPrinter{}
	p.batchPrinter.buf = &p.owned
	return p
}

// Reset clears the buffer so the Printer can be reused.
func (p *BufferPrinter) Reset() {
	p.owned.Reset()
}

// String returns everything written so far.
func (p *BufferPrinter) String() string {
	return p.owned.String()
}

// Len returns the number of bytes accumulated so far.
func (p *BufferPrinter) Len() int {
	return p.owned.Len()
}
