//go:build !noasm && arm64

package bytealg

import "golang.org/x/sys/cpu"

var (
	hasASIMD = cpu.ARM64.HasASIMD

	hasSSE2 = false
	hasAVX  = false
	hasAVX2 = false
)

var archKernels = kernelTable{
	w16: [numISA]kernel[[16]byte]{
		NEON: {mask: eqMask16NEON, index: index16NEON},
	},
	w32: [numISA]kernel[[32]byte]{
		NEON: {mask: eqMask32NEON, index: index32NEON},
	},
}

// The NEON kernels return a syndrome with two bits per byte: bit 2i is set
// when h[i] matched. Implemented in eqmask_neon_arm64.s.

//go:noescape
func syndrome16NEON(needle byte, h *[16]byte) uint32

//go:noescape
func syndrome32NEON(needle byte, h *[32]byte) uint64

func eqMask16NEON(needle byte, h *[16]byte) uint32 {
	return evenBits(uint64(syndrome16NEON(needle, h)))
}

func eqMask32NEON(needle byte, h *[32]byte) uint32 {
	return evenBits(syndrome32NEON(needle, h))
}

// index16NEON skips the compaction: halving the trailing zero count of the
// syndrome gives the byte position directly.
func index16NEON(needle byte, h *[16]byte) int {
	s := syndrome16NEON(needle, h)
	if s == 0 {
		return 16
	}
	return firstIndex(s, 32) / 2
}

func index32NEON(needle byte, h *[32]byte) int {
	return firstIndex(evenBits(syndrome32NEON(needle, h)), 32)
}

// evenBits packs bits 0, 2, 4, ... 62 of x into the low 32 bits.
func evenBits(x uint64) uint32 {
	x &= 0x5555555555555555
	x = (x | x>>1) & 0x3333333333333333
	x = (x | x>>2) & 0x0f0f0f0f0f0f0f0f
	x = (x | x>>4) & 0x00ff00ff00ff00ff
	x = (x | x>>8) & 0x0000ffff0000ffff
	x = (x | x>>16) & 0x00000000ffffffff
	return uint32(x)
}
