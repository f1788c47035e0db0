package lorom

// PlaceCode copies the CODE segment starting at the given flat image offset
// to the program bank of the image. Code that exceeds one bank is truncated.
// It returns the number of copied bytes.
func PlaceCode(flat, image []byte, start int) int {
	length := min(LoROM.CodeBankSize, len(flat)-start)
	if length <= 0 {
		return 0
	}
	copy(image[LoROM.CodeOffset:LoROM.CodeOffset+length], flat[start:start+length])
	return length
}
