package fileprocessor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/lorommap/internal/assembler/ca65"
	"github.com/retroenv/lorommap/internal/lorom"
	"github.com/retroenv/lorommap/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func createFlatImage() []byte {
	flat := make([]byte, 74)
	copy(flat[0x10:], "PROCESSOR TEST")
	copy(flat[0x21:], []byte{0x05, 0x80, 0x00, 0x80, 0x0A, 0x80})
	return append(flat,
		0x78, 0xD8, // sei, cld
		0x80, 0xFE, // bra *
	)
}

func setup(t *testing.T, flat []byte) (*Processor, *bytes.Buffer, options.Program) {
	t.Helper()

	dir := t.TempDir()
	input := filepath.Join(dir, "game.bin")
	if err := os.WriteFile(input, flat, 0600); err != nil {
		t.Fatalf("Failed to create input file: %v", err)
	}

	console := &bytes.Buffer{}
	logger := log.NewTestLogger(t)
	opts := options.Program{
		Parameters: options.Parameters{
			Input:  input,
			Output: filepath.Join(dir, "game.sfc"),
		},
	}
	return New(logger, console), console, opts
}

func TestProcessFile(t *testing.T) {
	p, console, opts := setup(t, createFlatImage())
	opts.Verify = true

	img, err := p.ProcessFile(context.Background(), opts)
	assert.NoError(t, err)
	assert.Equal(t, lorom.SourceHeader, img.VectorSource)

	written, err := os.ReadFile(opts.Output)
	assert.NoError(t, err)
	assert.Equal(t, 65568, len(written))
	assert.Equal(t, img.Data, written)
	assert.Equal(t, []byte{0x00, 0x80}, written[0x7FFC:0x7FFE])
	assert.Equal(t, []byte{0x78, 0xD8, 0x80, 0xFE}, written[0x8000:0x8004])

	assert.True(t, strings.Contains(console.String(), "Fixed ROM structure:"))
	assert.True(t, strings.Contains(console.String(), `"PROCESSOR TEST"`))
}

func TestProcessFileQuiet(t *testing.T) {
	p, console, opts := setup(t, createFlatImage())
	opts.Quiet = true

	_, err := p.ProcessFile(context.Background(), opts)
	assert.NoError(t, err)
	assert.Equal(t, 0, console.Len())
}

func TestProcessFileEmptyInput(t *testing.T) {
	p, _, opts := setup(t, nil)
	opts.Verify = true

	img, err := p.ProcessFile(context.Background(), opts)
	assert.NoError(t, err)
	assert.Equal(t, make([]byte, 65568), img.Data)
}

func TestProcessFileErrors(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		p, _, opts := setup(t, nil)
		opts.Input = filepath.Join(t.TempDir(), "missing.bin")

		_, err := p.ProcessFile(context.Background(), opts)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("unwritable output", func(t *testing.T) {
		p, _, opts := setup(t, createFlatImage())
		opts.Output = filepath.Join(t.TempDir(), "missing", "game.sfc")

		_, err := p.ProcessFile(context.Background(), opts)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("cancelled", func(t *testing.T) {
		p, _, opts := setup(t, createFlatImage())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.ProcessFile(ctx, opts)
		assert.True(t, errors.Is(err, context.Canceled))
		_, statErr := os.Stat(opts.Output)
		assert.True(t, errors.Is(statErr, os.ErrNotExist))
	})

	t.Run("assembler missing", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())
		p, _, opts := setup(t, []byte("\tsei\n"))
		opts.Assemble = true

		_, err := p.ProcessFile(context.Background(), opts)
		assert.True(t, errors.Is(err, ca65.ErrToolNotInstalled))
	})
}

func TestPrintBanner(t *testing.T) {
	buf := &bytes.Buffer{}
	PrintBanner(buf, options.Program{}, "1.0.0")
	assert.True(t, strings.Contains(buf.String(), "version: 1.0.0"))

	buf.Reset()
	PrintBanner(buf, options.Program{Flags: options.Flags{Quiet: true}}, "1.0.0")
	assert.Equal(t, 0, buf.Len())
}
