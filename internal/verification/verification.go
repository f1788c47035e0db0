// Package verification verifies that the written output file has a valid LoROM layout.
package verification

import (
	"fmt"
	"os"

	"github.com/retroenv/lorommap/internal/lorom"
	"github.com/retroenv/retrogolib/log"
)

const maxReportedMismatches = 10

// VerifyOutput re-reads the written file, checks the LoROM layout and
// compares it against the converted image.
func VerifyOutput(logger *log.Logger, path string, expected *lorom.Image) error {
	written, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading output file for verification: %w", err)
	}

	if err := lorom.Check(written, expected.CodeLength); err != nil {
		return fmt.Errorf("checking LoROM layout: %w", err)
	}

	if err := checkBufferEqual(logger, expected.Data, written); err != nil {
		return fmt.Errorf("comparing output file: %w", err)
	}
	return nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs <= maxReportedMismatches {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
