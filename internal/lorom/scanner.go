package lorom

import (
	"bytes"
	"fmt"
)

// BoundaryRule names the rule that located the start of the code.
type BoundaryRule int

const (
	// RuleSeiCld matched a sei, cld instruction pair.
	RuleSeiCld BoundaryRule = iota
	// RuleRepXce matched a rep #$38, xce instruction sequence.
	RuleRepXce
	// RuleDefault uses the fixed metadata size since no idiom was found.
	RuleDefault
)

func (r BoundaryRule) String() string {
	switch r {
	case RuleSeiCld:
		return "sei/cld"
	case RuleRepXce:
		return "rep #$38/xce"
	case RuleDefault:
		return "default"
	default:
		return fmt.Sprintf("BoundaryRule(%d)", int(r))
	}
}

// Boundary is the offset in the flat image at which the code begins.
type Boundary struct {
	Offset int
	Rule   BoundaryRule
}

// reset handler idioms, in order of precedence
var boundaryPatterns = []struct {
	rule    BoundaryRule
	pattern []byte
}{
	{rule: RuleSeiCld, pattern: []byte{0x78, 0xD8}},       // sei, cld
	{rule: RuleRepXce, pattern: []byte{0xC2, 0x38, 0xFB}}, // rep #$38, xce
}

// FindCodeStart returns the offset in the flat image where the reset
// handler and with it the CODE segment starts. The linker does not record
// the segment sizes, so the start is found by searching for common reset
// handler instruction idioms. If none match, the first DefaultCodeStart
// bytes are treated as header and vectors.
func FindCodeStart(flat []byte) Boundary {
	for _, p := range boundaryPatterns {
		if offset := bytes.Index(flat, p.pattern); offset >= 0 {
			return Boundary{Offset: offset, Rule: p.rule}
		}
	}
	return Boundary{Offset: LoROM.DefaultCodeStart, Rule: RuleDefault}
}
