// Package detector handles input file type detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/lorommap/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// InputKind is the type of the input file.
type InputKind int

const (
	// FlatImage is a linked flat binary image.
	FlatImage InputKind = iota
	// Source is a ca65 assembler source that needs to be assembled and linked first.
	Source
)

func (k InputKind) String() string {
	if k == Source {
		return "source"
	}
	return "flat image"
}

// Detector handles input type detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new input detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the input kind from options or file auto-detection.
// An explicit -asm option always selects a source input, otherwise the
// input filename extension is used.
func (d *Detector) Detect(opts options.Program) InputKind {
	if opts.Assemble {
		return Source
	}

	kind := d.detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected input",
		log.String("kind", kind.String()),
		log.String("file", opts.Input))
	return kind
}

// detectFromFile determines the input kind based on file extension.
func (d *Detector) detectFromFile(filename string) InputKind {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".s", ".asm", ".a65":
		return Source
	default:
		// ld65 output has no fixed extension, treat everything else as binary
		return FlatImage
	}
}
