package lorom

import (
	"encoding/binary"
	"fmt"
)

// VectorSource names where the interrupt vectors of an image came from.
type VectorSource int

const (
	// SourceNone means no vectors were found and the vector table stays zeroed.
	SourceNone VectorSource = iota
	// SourceVectorSegment means the VECTORS segment was copied verbatim.
	SourceVectorSegment
	// SourceHeader means the vectors were parsed from the HEADER segment.
	SourceHeader
)

func (s VectorSource) String() string {
	switch s {
	case SourceNone:
		return "none"
	case SourceVectorSegment:
		return "VECTORS segment"
	case SourceHeader:
		return "HEADER segment"
	default:
		return fmt.Sprintf("VectorSource(%d)", int(s))
	}
}

// Vectors contains the emulation mode handler addresses that are required
// to boot a program. COP, BRK and ABORT are not used.
type Vectors struct {
	NMI   uint16
	Reset uint16
	IRQ   uint16
}

// ProbeResult classifies the VECTORS segment region of a flat image.
type ProbeResult int

const (
	// ProbeMissing means the flat image ends before the region does.
	ProbeMissing ProbeResult = iota
	// ProbeEmpty means the region exists but all of its bytes are zero.
	ProbeEmpty
	// ProbeFound means the region contains at least one nonzero byte.
	ProbeFound
)

// VectorProbe is the result of probing the flat image for a VECTORS segment.
// Data is only set for ProbeFound.
type VectorProbe struct {
	Result ProbeResult
	Data   []byte
}

// ProbeVectors returns the VECTORS segment that ld65 places directly after
// the HEADER segment.
func ProbeVectors(flat []byte) VectorProbe {
	start := LoROM.HeaderSize
	end := start + LoROM.VectorsSize
	if len(flat) < end {
		return VectorProbe{Result: ProbeMissing}
	}

	data := flat[start:end]
	for _, b := range data {
		if b != 0 {
			return VectorProbe{Result: ProbeFound, Data: data}
		}
	}
	return VectorProbe{Result: ProbeEmpty}
}

// ParseHeaderVectors reads the .addr nmi, reset, irq words that are
// embedded in the HEADER segment. It returns false if the header is too
// short to contain all three words.
func ParseHeaderVectors(header []byte) (Vectors, bool) {
	if len(header) < LoROM.HeaderVectorsMinSize {
		return Vectors{}, false
	}
	return Vectors{
		NMI:   binary.LittleEndian.Uint16(header[LoROM.HeaderNMI:]),
		Reset: binary.LittleEndian.Uint16(header[LoROM.HeaderReset:]),
		IRQ:   binary.LittleEndian.Uint16(header[LoROM.HeaderIRQ:]),
	}, true
}

// ResolveVectors writes the interrupt vectors to the image. A VECTORS
// segment that contains any nonzero byte is copied verbatim, even if it does
// not hold valid vectors. If the segment exists but is zeroed, the linker
// emitted the vectors inside the HEADER segment instead and these are used.
// A flat image that ends before the VECTORS segment gets no vectors.
func ResolveVectors(flat, image []byte) VectorSource {
	probe := ProbeVectors(flat)
	switch probe.Result {
	case ProbeFound:
		copy(image[LoROM.VectorsOffset:LoROM.VectorsEnd()], probe.Data)
		return SourceVectorSegment

	case ProbeEmpty:
		vectors, ok := ParseHeaderVectors(flat[:LoROM.HeaderSize])
		if !ok {
			return SourceNone
		}
		vectors.write(image)
		return SourceHeader

	default:
		return SourceNone
	}
}

func (v Vectors) write(image []byte) {
	binary.LittleEndian.PutUint16(image[LoROM.NMIOffset:], v.NMI)
	binary.LittleEndian.PutUint16(image[LoROM.ResetOffset:], v.Reset)
	binary.LittleEndian.PutUint16(image[LoROM.IRQOffset:], v.IRQ)
}
