//go:build unix

package buffer

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

func mapFile(f *os.File, size int64) ([]byte, bool, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err == nil {
		return data, true, nil
	}
	// Mapping can fail on pipes or exotic filesystems; fall back to a
	// full read.
	all, rerr := io.ReadAll(f)
	if rerr != nil {
		return nil, false, rerr
	}
	return all, false, nil
}

func unmapFile(data []byte) error {
	return unix.Munmap(data)
}
