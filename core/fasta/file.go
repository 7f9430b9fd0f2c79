package fasta

import (
	"context"
	"fmt"
	"os"
)

// LoadFile loads a local FASTA file. Plain files are memory-mapped for the
// duration of the parse; compressed files stream through NewReader.
func LoadFile(ctx context.Context, path string) (*Sequence, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	st, err := fh.Stat()
	if err != nil {
		return nil, err
	}
	size := st.Size()
	if int64(int(size)) != size {
		return nil, fmt.Errorf("%s: %d bytes does not fit in memory", path, size)
	}

	var sig [4]byte
	n, _ := fh.ReadAt(sig[:], 0)
	if Detect(sig[:n]) != Plain {
		rc, err := NewReader(fh)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer rc.Close()
		seq, err := Load(ctx, rc, int(size))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return seq, nil
	}

	if size == 0 {
		return loadBytes(ctx, nil)
	}
	data, err := mmap(fh, int(size))
	if err != nil {
		return nil, fmt.Errorf("%s: mmap: %w", path, err)
	}
	seq, err := loadBytes(ctx, data)
	if uerr := munmap(data); uerr != nil && err == nil {
		err = uerr
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}
