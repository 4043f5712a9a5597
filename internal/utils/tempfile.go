package utils

import (
	"fmt"
	"os"
)

// WriteTempFile writes data to a fresh file in the OS temp directory,
// created with os.CreateTemp using the given name pattern, and returns the
// file path together with a cleanup func that removes it.
//
// The cleanup func is safe to call on every exit path, including after a
// failed write: the file is removed best-effort and repeated calls are
// harmless.
func WriteTempFile(pattern string, data []byte) (string, func(), error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, fmt.Errorf("create temp file: %w", err)
	}

	path := f.Name()
	cleanup := func() {
		os.Remove(path)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("write temp file %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close temp file %s: %w", path, err)
	}

	return path, cleanup, nil
}
