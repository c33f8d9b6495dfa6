// Package buffer loads an input file into a single contiguous read-only
// byte slice for the aggregation core, memory-mapping where the platform
// supports it.
package buffer

import (
	"fmt"
	"os"
)

// A Buffer exposes the whole input file as one addressable byte sequence.
// Data must be treated as read-only and must not be used after Close.
type Buffer struct {
	Data   []byte
	mapped bool
}

// Map opens path and returns its contents as a Buffer. On unix the file is
// mmapped read-only; elsewhere, or when mapping fails, the whole file is
// read into memory instead.
func Map(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if fi.Size() == 0 {
		return &Buffer{}, nil
	}

	data, mapped, err := mapFile(f, fi.Size())
	if err != nil {
		return nil, fmt.Errorf("load input: %w", err)
	}
	return &Buffer{Data: data, mapped: mapped}, nil
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() int {
	return len(b.Data)
}

// Close releases the mapping, if any.
func (b *Buffer) Close() error {
	data := b.Data
	b.Data = nil
	if b.mapped {
		b.mapped = false
		return unmapFile(data)
	}
	return nil
}
