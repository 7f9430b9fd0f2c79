// Package suffix builds a suffix array over the valid prefix of a byte buffer.
// It never imports search, fasta or anything under internal/; keep it a leaf.
//
// Suffixes are plain offsets into the caller's buffer. The buffer is borrowed
// read-only for the lifetime of the Index and must not be modified.
package suffix
