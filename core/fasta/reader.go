// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
)

// Record is the span one FASTA entry contributed to Sequence.Buf.
type Record struct {
	ID    string
	Start int
	End   int
}

// Sequence is every record of a FASTA input concatenated into one buffer.
// Buf may be longer than the sequence; only Buf[:Valid] is meaningful.
type Sequence struct {
	Buf     []byte
	Valid   int
	Records []Record
}

// Bytes returns the valid prefix of Buf.
func (s *Sequence) Bytes() []byte { return s.Buf[:s.Valid] }

// Locate maps a buffer offset to the record containing it and the position
// within that record.
func (s *Sequence) Locate(off int) (id string, pos int, ok bool) {
	if off < 0 || off >= s.Valid {
		return "", 0, false
	}
	i := sort.Search(len(s.Records), func(i int) bool { return s.Records[i].End > off })
	if i == len(s.Records) {
		return "", 0, false
	}
	r := s.Records[i]
	return r.ID, off - r.Start, true
}

// Load reads FASTA text from r. Header lines ('>') start a record, ';' lines
// are comments, and every other line contributes its bytes minus surrounding
// whitespace. Text before the first header forms an anonymous record.
// Lines may be of any length. sizeHint pre-sizes the buffer, typically to
// the input's byte length.
//
// Cancellation via ctx is checked between reads.
func Load(ctx context.Context, r io.Reader, sizeHint int) (*Sequence, error) {
	p := newParser(sizeHint)
	br := bufio.NewReaderSize(r, 64<<10)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		chunk, err := br.ReadSlice('\n')
		switch err {
		case nil:
			p.feed(chunk, true)
		case bufio.ErrBufferFull:
			p.feed(chunk, false)
		case io.EOF:
			p.feed(chunk, true)
			return p.sequence(), nil
		default:
			return nil, fmt.Errorf("fasta read: %w", err)
		}
	}
}

// loadBytes parses FASTA text already held in memory.
func loadBytes(ctx context.Context, data []byte) (*Sequence, error) {
	p := newParser(len(data))
	for len(data) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line = data[:i+1]
		}
		p.feed(line, true)
		data = data[len(line):]
	}
	return p.sequence(), nil
}

// Line kinds, decided by the first non-blank byte.
const (
	lineBlank = iota
	lineHeader
	lineComment
	lineSeq
)

// parser accumulates lines into one buffer. A line may arrive in several
// pieces; only the last carries eol.
type parser struct {
	buf       []byte
	recs      []Record
	open      bool
	kind      int
	lineStart int
	hdr       []byte
}

func newParser(sizeHint int) *parser {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &parser{buf: make([]byte, 0, sizeHint)}
}

func (p *parser) feed(piece []byte, eol bool) {
	if p.kind == lineBlank {
		piece = bytes.TrimLeft(piece, " \t\r\n\v\f")
		if len(piece) > 0 {
			p.begin(piece[0])
			if p.kind != lineSeq {
				piece = piece[1:]
			}
		}
	}
	switch p.kind {
	case lineHeader:
		p.hdr = append(p.hdr, piece...)
	case lineSeq:
		p.buf = append(p.buf, piece...)
	}
	if eol {
		p.endLine()
	}
}

func (p *parser) begin(first byte) {
	switch first {
	case '>':
		p.kind = lineHeader
		p.hdr = p.hdr[:0]
	case ';':
		p.kind = lineComment
	default:
		p.kind = lineSeq
		if !p.open {
			p.recs = append(p.recs, Record{Start: len(p.buf)})
			p.open = true
		}
		p.lineStart = len(p.buf)
	}
}

func (p *parser) endLine() {
	switch p.kind {
	case lineHeader:
		p.closeRecord()
		p.recs = append(p.recs, Record{ID: parseHeaderID(p.hdr), Start: len(p.buf)})
		p.open = true
	case lineSeq:
		p.buf = p.buf[:p.lineStart+len(bytes.TrimRight(p.buf[p.lineStart:], " \t\r\n\v\f"))]
	}
	p.kind = lineBlank
}

func (p *parser) closeRecord() {
	if p.open {
		p.recs[len(p.recs)-1].End = len(p.buf)
	}
}

func (p *parser) sequence() *Sequence {
	p.closeRecord()
	return &Sequence{Buf: p.buf[:cap(p.buf)], Valid: len(p.buf), Records: p.recs}
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
