package bytealg

import "encoding/binary"

const (
	lo7x8  = 0x7f7f7f7f7f7f7f7f
	hi8x8  = 0x8080808080808080
	ones8  = 0x0101010101010101
	pack64 = 0x0002040810204081 // gathers the 8 lane high bits into the top byte

	lo7x4  = 0x7f7f7f7f
	hi8x4  = 0x80808080
	ones4  = 0x01010101
	pack32 = 0x00204081 // gathers the 4 lane high bits into the top nibble
)

// zeroLanes64 sets the high bit of every byte of x that is zero and clears
// everything else. Unlike the (x-0x01..)&^x&0x80.. form it cannot carry
// between lanes, so bits above the first match are exact as well.
func zeroLanes64(x uint64) uint64 {
	return ^(((x & lo7x8) + lo7x8) | x) & hi8x8
}

func zeroLanes32(x uint32) uint32 {
	return ^(((x & lo7x4) + lo7x4) | x) & hi8x4
}

// swarWord returns an 8-bit mask of the bytes of w equal to the needle that
// was broadcast into pattern.
func swarWord(w, pattern uint64) uint32 {
	return uint32((zeroLanes64(w^pattern) * pack64) >> 56)
}

func eqMask4SWAR(needle byte, h *[4]byte) uint32 {
	w := binary.LittleEndian.Uint32(h[:])
	z := zeroLanes32(w ^ uint32(needle)*ones4)
	return (z * pack32) >> 28
}

func eqMask16SWAR(needle byte, h *[16]byte) uint32 {
	p := uint64(needle) * ones8
	return swarWord(binary.LittleEndian.Uint64(h[0:]), p) |
		swarWord(binary.LittleEndian.Uint64(h[8:]), p)<<8
}

func eqMask32SWAR(needle byte, h *[32]byte) uint32 {
	p := uint64(needle) * ones8
	return swarWord(binary.LittleEndian.Uint64(h[0:]), p) |
		swarWord(binary.LittleEndian.Uint64(h[8:]), p)<<8 |
		swarWord(binary.LittleEndian.Uint64(h[16:]), p)<<16 |
		swarWord(binary.LittleEndian.Uint64(h[24:]), p)<<24
}

func index4SWAR(needle byte, h *[4]byte) int {
	return firstIndex(eqMask4SWAR(needle, h), 4)
}

func index16SWAR(needle byte, h *[16]byte) int {
	return firstIndex(eqMask16SWAR(needle, h), 16)
}

func index32SWAR(needle byte, h *[32]byte) int {
	return firstIndex(eqMask32SWAR(needle, h), 32)
}
