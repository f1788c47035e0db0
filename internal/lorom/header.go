package lorom

// ExtractHeader copies the HEADER segment from the start of the flat image
// to its LoROM offset. A flat image that is shorter than the header is not
// copied and the header area stays zeroed.
func ExtractHeader(flat, image []byte) bool {
	if len(flat) < LoROM.HeaderSize {
		return false
	}
	copy(image[LoROM.HeaderOffset:LoROM.HeaderEnd()], flat[:LoROM.HeaderSize])
	return true
}
