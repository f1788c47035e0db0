// Package lorom converts a flat ld65 linker image into the LoROM cartridge layout.
package lorom

// Layout describes the fixed offsets of the LoROM output file and the
// offsets of the segments inside the flat linker image.
type Layout struct {
	HeaderOffset int // output offset of the internal header
	HeaderSize   int // size of the HEADER segment in the flat image

	VectorsOffset int // output offset of the native and emulation vector table
	VectorsSize   int // size of the VECTORS segment in the flat image

	NMIOffset   int // emulation mode NMI vector
	IRQOffset   int // emulation mode IRQ/BRK vector
	ResetOffset int // emulation mode RESET vector

	// offsets of the .addr nmi, reset, irq words that some linker
	// configurations emit inside the HEADER segment
	HeaderNMI            int
	HeaderReset          int
	HeaderIRQ            int
	HeaderVectorsMinSize int

	CodeOffset       int // output offset of the program bank
	CodeBankSize     int // maximum size of the program bank
	DefaultCodeStart int // code start used when no reset handler idiom is found

	ImageSize int
}

// LoROM is the layout of a single bank 32 KiB LoROM file.
var LoROM = Layout{
	HeaderOffset: 0x7FB0,
	HeaderSize:   0x2E,

	VectorsOffset: 0x7FE4,
	VectorsSize:   0x1C,

	NMIOffset:   0x7FEA,
	IRQOffset:   0x7FEE,
	ResetOffset: 0x7FFC,

	HeaderNMI:            0x21,
	HeaderReset:          0x23,
	HeaderIRQ:            0x25,
	HeaderVectorsMinSize: 0x27,

	CodeOffset:       0x8000,
	CodeBankSize:     0x8000,
	DefaultCodeStart: 0x50,

	ImageSize: 0x7FB0 + 0x8000,
}

// VectorsEnd returns the output offset directly after the vector table.
func (l Layout) VectorsEnd() int {
	return l.VectorsOffset + l.VectorsSize
}

// HeaderEnd returns the output offset directly after the internal header.
func (l Layout) HeaderEnd() int {
	return l.HeaderOffset + l.HeaderSize
}
