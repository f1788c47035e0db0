package ca65

import (
	"fmt"
	"strings"

	"github.com/retroenv/lorommap/internal/lorom"
)

// bank address at which the first byte of the program bank is mapped
const bankBase = 0x8000

const (
	memoryConfigPart1 = `
MEMORY {
    ZEROPAGE:    start = $0000,  size = $0100,   type = rw, file = "";
    BSS:         start = $0200,  size = $1E00,   type = rw, file = "";
`

	memoryAreaTemplate = `    %-12s start = $%04X,  size = $%04X,   type = ro, file = %%O, fill = %s;
`

	segmentsConfigPart1 = `}

SEGMENTS {
    ZEROPAGE:    load = ZEROPAGE, type = zp,  optional = yes;
    BSS:         load = BSS,      type = bss, optional = yes;
    HEADER:      load = HEADER,   type = ro;
    VECTORS:     load = VECTORS,  type = ro;
    CODE:        load = ROM,      type = ro;
    RODATA:      load = ROM,      type = ro,  optional = yes;
}
`
)

// memory areas in the order that ld65 writes them to the flat output file
type memoryArea struct {
	name  string
	start int
	size  int
	fill  bool
}

// GenerateLinkerConfig generates a ld65 linker config that links the HEADER,
// VECTORS and CODE segments back to back into one flat file. HEADER and
// VECTORS are filled to their full size so that the code follows at a
// fixed offset.
func GenerateLinkerConfig(layout lorom.Layout) (string, error) {
	areas := []memoryArea{
		{name: "HEADER", start: bankBase + layout.HeaderOffset, size: layout.HeaderSize, fill: true},
		{name: "VECTORS", start: bankBase + layout.VectorsOffset, size: layout.VectorsSize, fill: true},
		{name: "ROM", start: bankBase, size: layout.CodeBankSize},
	}

	buf := &strings.Builder{}
	buf.WriteString(memoryConfigPart1)

	for _, area := range areas {
		fill := "no"
		if area.fill {
			fill = "yes"
		}
		if _, err := fmt.Fprintf(buf, memoryAreaTemplate, area.name+":", area.start, area.size, fill); err != nil {
			return "", fmt.Errorf("writing memory area line: %w", err)
		}
	}

	buf.WriteString(segmentsConfigPart1)
	return buf.String(), nil
}
