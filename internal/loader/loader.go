// Package loader handles flat image file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"
)

// Loader handles loading flat linker images from disk.
type Loader struct{}

// New creates a new flat image loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the complete flat image from the given file.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.LoadFromReader(file)
}

// LoadFromReader reads the complete flat image from the given reader.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading flat image: %w", err)
	}
	return data, nil
}
