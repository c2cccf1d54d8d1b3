// Package upload stages uploaded bytes into scoped temporary files.
package upload

import (
	"fmt"
	"os"
	"sync"
)

// Stage writes data to a fresh temporary file and returns its path together
// with a cleanup function. Cleanup removes the file, is safe to call more
// than once, and must be deferred on every exit path.
func Stage(data []byte) (string, func(), error) {
	f, err := os.CreateTemp("", "color-analyzer-*.img")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	path := f.Name()
	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			os.Remove(path)
		})
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	return path, cleanup, nil
}
