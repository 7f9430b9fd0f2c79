//go:build windows

package fasta

import (
	"io"
	"os"
)

// Windows has no cheap read-only mapping here; read the file instead.
func mmap(f *os.File, size int) ([]byte, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(io.NewSectionReader(f, 0, int64(size)), data); err != nil {
		return nil, err
	}
	return data, nil
}

func munmap([]byte) error { return nil }
