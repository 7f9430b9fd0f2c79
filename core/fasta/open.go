// core/fasta/open.go
package fasta

import (
	"bufio"
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec names a container format recognised by its magic number.
type Codec string

const (
	Plain Codec = "plain"
	Gzip  Codec = "gzip"
	Zstd  Codec = "zstd"
	LZ4   Codec = "lz4"
)

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Detect identifies the codec from the first bytes of a stream.
func Detect(sig []byte) Codec {
	switch {
	case bytes.HasPrefix(sig, magicGzip):
		return Gzip
	case bytes.HasPrefix(sig, magicZstd):
		return Zstd
	case bytes.HasPrefix(sig, magicLZ4):
		return LZ4
	}
	return Plain
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// NewReader sniffs r and transparently decompresses gzip, zstd and LZ4
// frames. Closing the result releases decoder state; it never closes r.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(r, 64<<10)
	sig, _ := br.Peek(len(magicZstd))
	switch Detect(sig) {
	case Gzip:
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr}}, nil
	case Zstd:
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(br)), nil
	}
	return io.NopCloser(br), nil
}
