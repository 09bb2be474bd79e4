package bytealg

// Scalar4 returns the index of the first byte of h equal to needle, or 4.
func Scalar4(needle byte, h *[4]byte) int {
	return scan(needle, h[:])
}

// Scalar16 returns the index of the first byte of h equal to needle, or 16.
func Scalar16(needle byte, h *[16]byte) int {
	return scan(needle, h[:])
}

// Scalar32 returns the index of the first byte of h equal to needle, or 32.
func Scalar32(needle byte, h *[32]byte) int {
	return scan(needle, h[:])
}

func scan(needle byte, h []byte) int {
	for i, c := range h {
		if c == needle {
			return i
		}
	}
	return len(h)
}

// scanMask builds the match bitmask one byte at a time. It backs the Generic
// entry of the kernel table and is the reference for the vector masks.
func scanMask(needle byte, h []byte) uint32 {
	var m uint32
	for i, c := range h {
		if c == needle {
			m |= 1 << i
		}
	}
	return m
}

func scanMask4(needle byte, h *[4]byte) uint32   { return scanMask(needle, h[:]) }
func scanMask16(needle byte, h *[16]byte) uint32 { return scanMask(needle, h[:]) }
func scanMask32(needle byte, h *[32]byte) uint32 { return scanMask(needle, h[:]) }
