// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input        string // flat linker image, or ca65 source if Assemble is set
	Output       string // LoROM file to write
	LinkerConfig string // custom ld65 config used when assembling
}

// Flags contains behavior options.
type Flags struct {
	Assemble bool // assemble and link the input with ca65/ld65 first
	Verify   bool // re-read the written file and check the LoROM layout
	Debug    bool
	Quiet    bool
}

// Program options of the converter.
type Program struct {
	Parameters
	Flags
}
