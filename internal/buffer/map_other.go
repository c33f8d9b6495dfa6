//go:build !unix

package buffer

import (
	"io"
	"os"
)

func mapFile(f *os.File, _ int64) ([]byte, bool, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, false, err
	}
	return data, false, nil
}

func unmapFile([]byte) error {
	return nil
}
