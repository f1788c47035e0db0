// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/lorommap/internal/assembler/ca65"
	"github.com/retroenv/lorommap/internal/detector"
	"github.com/retroenv/lorommap/internal/loader"
	"github.com/retroenv/lorommap/internal/lorom"
	"github.com/retroenv/lorommap/internal/options"
	"github.com/retroenv/lorommap/internal/report"
	"github.com/retroenv/lorommap/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// Processor converts flat linker images into LoROM files.
type Processor struct {
	logger  *log.Logger
	console io.Writer
}

// New returns a processor that logs to logger and prints the conversion
// summary to console.
func New(logger *log.Logger, console io.Writer) *Processor {
	return &Processor{
		logger:  logger,
		console: console,
	}
}

// ProcessFile handles the complete file processing workflow
func (p *Processor) ProcessFile(ctx context.Context, opts options.Program) (*lorom.Image, error) {
	flat, err := p.loadFlatImage(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img := lorom.Convert(flat)
	p.logger.Debug("Converted flat image",
		log.Int("input_size", len(flat)),
		log.Hex("code_start", img.Boundary.Offset),
		log.String("boundary_rule", img.Boundary.Rule.String()),
		log.String("vector_source", img.VectorSource.String()),
		log.Int("code_size", img.CodeLength))

	if err := os.WriteFile(opts.Output, img.Data, 0644); err != nil {
		return nil, fmt.Errorf("writing output file %s: %w", opts.Output, err)
	}

	if !opts.Quiet {
		report.New(p.console).Summary(opts.Output, img)
	}

	if opts.Verify {
		if err := verification.VerifyOutput(p.logger, opts.Output, img); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return img, nil
}

func (p *Processor) loadFlatImage(ctx context.Context, opts options.Program) ([]byte, error) {
	input := opts.Input

	if detector.New(p.logger).Detect(opts) == detector.Source {
		flatFile, cleanup, err := p.assemble(ctx, opts)
		if err != nil {
			return nil, err
		}
		defer cleanup()
		input = flatFile
	}

	flat, err := loader.New().Load(input)
	if err != nil {
		return nil, fmt.Errorf("loading flat image: %w", err)
	}
	return flat, nil
}

// assemble builds a temporary flat image from the input source file and
// returns its name and a function that removes all temporary files.
func (p *Processor) assemble(ctx context.Context, opts options.Program) (string, func(), error) {
	dir, err := os.MkdirTemp("", "lorommap")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp dir: %w", err)
	}
	cleanup := func() {
		_ = os.RemoveAll(dir)
	}

	base := strings.TrimSuffix(filepath.Base(opts.Input), filepath.Ext(opts.Input))
	objectFile := filepath.Join(dir, base+".o")
	flatFile := filepath.Join(dir, base+".bin")

	p.logger.Debug("Assembling source", log.String("file", opts.Input))

	conf := ca65.Config{LinkerConfig: opts.LinkerConfig}
	if err := ca65.AssembleUsingExternalApp(ctx, opts.Input, objectFile, flatFile, conf); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("building flat image: %w", err)
	}
	return flatFile, cleanup, nil
}

// PrintBanner prints application version information
func PrintBanner(console io.Writer, opts options.Program, version string) {
	if opts.Quiet {
		return
	}
	report.New(console).Banner(version)
}
