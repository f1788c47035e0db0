package lorom

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

const (
	titleOffset = 0x7FC0
	titleSize   = 21
)

var (
	// ErrImageSize is returned for an output buffer with the wrong size.
	ErrImageSize = errors.New("invalid LoROM image size")
	// ErrPaddingViolation is returned for a nonzero byte in a padding area.
	ErrPaddingViolation = errors.New("nonzero byte in padding area")
)

// Image is a converted LoROM file including details about how the flat
// image was mapped.
type Image struct {
	Data []byte

	Boundary     Boundary
	HeaderCopied bool
	VectorSource VectorSource
	CodeLength   int
}

// Convert maps the flat linker image into a new LoROM image. The flat image
// is not modified. Inputs that are too short for a stage leave the
// corresponding output area zeroed.
func Convert(flat []byte) *Image {
	img := &Image{
		Data: make([]byte, LoROM.ImageSize),
	}

	img.Boundary = FindCodeStart(flat)
	img.HeaderCopied = ExtractHeader(flat, img.Data)
	img.VectorSource = ResolveVectors(flat, img.Data)
	img.CodeLength = PlaceCode(flat, img.Data, img.Boundary.Offset)
	return img
}

// NMIVector returns the emulation mode NMI handler address.
func (img *Image) NMIVector() uint16 {
	return binary.LittleEndian.Uint16(img.Data[LoROM.NMIOffset:])
}

// ResetVector returns the emulation mode RESET handler address.
func (img *Image) ResetVector() uint16 {
	return binary.LittleEndian.Uint16(img.Data[LoROM.ResetOffset:])
}

// IRQVector returns the emulation mode IRQ handler address.
func (img *Image) IRQVector() uint16 {
	return binary.LittleEndian.Uint16(img.Data[LoROM.IRQOffset:])
}

// Title returns the internal ROM name of the header with trailing padding
// and all non printable characters removed.
func (img *Image) Title() string {
	raw := img.Data[titleOffset : titleOffset+titleSize]
	var sb strings.Builder
	for _, b := range raw {
		if b >= 0x20 && b < 0x7F {
			sb.WriteByte(b)
		}
	}
	return strings.TrimSpace(sb.String())
}

// CodePreview returns up to n bytes from the start of the program bank.
func (img *Image) CodePreview(n int) []byte {
	n = max(0, min(n, LoROM.CodeBankSize))
	return img.Data[LoROM.CodeOffset : LoROM.CodeOffset+n]
}

// Check validates that data has the size of a LoROM image and that all
// bytes outside of the header, the vector table and the used part of the
// program bank are zero.
func Check(data []byte, codeLength int) error {
	if len(data) != LoROM.ImageSize {
		return fmt.Errorf("%w: %d bytes, expected %d", ErrImageSize, len(data), LoROM.ImageSize)
	}

	used := [][2]int{
		{LoROM.HeaderOffset, LoROM.HeaderEnd()},
		{LoROM.VectorsOffset, LoROM.VectorsEnd()},
		{LoROM.CodeOffset, LoROM.CodeOffset + max(0, min(codeLength, LoROM.CodeBankSize))},
	}

	offset := 0
	for _, area := range used {
		if err := checkZero(data, offset, area[0]); err != nil {
			return err
		}
		offset = area[1]
	}
	return checkZero(data, offset, len(data))
}

func checkZero(data []byte, start, end int) error {
	for i := start; i < end; i++ {
		if data[i] != 0 {
			return fmt.Errorf("%w: offset $%04X", ErrPaddingViolation, i)
		}
	}
	return nil
}
