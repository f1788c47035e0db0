// Package ca65 builds flat linker images from ca65 assembler sources.
package ca65

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/retroenv/lorommap/internal/lorom"
)

const (
	assemblerName = "ca65"
	linkerName    = "ld65"
)

// ErrToolNotInstalled is returned if ca65 or ld65 can not be found in the path.
var ErrToolNotInstalled = errors.New("tool is not installed")

// Config holds the build configuration.
type Config struct {
	// LinkerConfig is the path of a custom ld65 config. If empty, a config
	// for the flat LoROM layout is generated.
	LinkerConfig string
}

// AssembleUsingExternalApp calls the external assembler and linker to
// generate a flat image from the given asm file.
func AssembleUsingExternalApp(ctx context.Context, asmFile, objectFile, outputFile string, conf Config) error {
	assembler := assemblerName
	linker := linkerName
	if runtime.GOOS == "windows" {
		assembler += ".exe"
		linker += ".exe"
	}

	if _, err := exec.LookPath(assembler); err != nil {
		return fmt.Errorf("%s: %w", assembler, ErrToolNotInstalled)
	}
	if _, err := exec.LookPath(linker); err != nil {
		return fmt.Errorf("%s: %w", linker, ErrToolNotInstalled)
	}

	cmd := exec.CommandContext(ctx, assembler, "--cpu", "65816", asmFile, "-o", objectFile)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("assembling file: %s: %w", strings.TrimSpace(string(out)), err)
	}

	configFile := conf.LinkerConfig
	if configFile == "" {
		generated, err := writeLinkerConfig()
		if err != nil {
			return err
		}
		defer func() {
			_ = os.Remove(generated)
		}()
		configFile = generated
	}

	cmd = exec.CommandContext(ctx, linker, "-C", configFile, "-o", outputFile, objectFile)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("linking file: %s: %w", strings.TrimSpace(string(out)), err)
	}

	return nil
}

func writeLinkerConfig() (string, error) {
	configFile, err := os.CreateTemp("", "lorom.*.cfg")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	_ = configFile.Close()

	linkerConfig, err := GenerateLinkerConfig(lorom.LoROM)
	if err != nil {
		_ = os.Remove(configFile.Name())
		return "", fmt.Errorf("generating ld65 config: %w", err)
	}

	if err := os.WriteFile(configFile.Name(), []byte(linkerConfig), 0600); err != nil {
		_ = os.Remove(configFile.Name())
		return "", fmt.Errorf("writing linker config: %w", err)
	}
	return configFile.Name(), nil
}
