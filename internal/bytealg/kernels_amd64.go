//go:build !noasm && amd64

package bytealg

import "golang.org/x/sys/cpu"

var (
	hasSSE2  = cpu.X86.HasSSE2
	hasASIMD = false
)

var archKernels = kernelTable{
	w16: [numISA]kernel[[16]byte]{
		SSE2: {mask: eqMask16SSE2, index: index16SSE2},
		AVX:  {mask: eqMask16AVX, index: index16AVX},
		// AVX2 implies AVX and gains nothing over it at 16 bytes.
		AVX2: {mask: eqMask16AVX, index: index16AVX},
	},
	w32: [numISA]kernel[[32]byte]{
		SSE2: {mask: eqMask32SSE2, index: index32SSE2},
		AVX:  {mask: eqMask32AVX, index: index32AVX},
		AVX2: {mask: eqMask32AVX2, index: index32AVX2},
	},
}

// eqMask32SSE2 covers bytes [0,16) and [16,32) with two 128-bit compares.
func eqMask32SSE2(needle byte, h *[32]byte) uint32 {
	return eqMask16SSE2(needle, (*[16]byte)(h[:16])) |
		eqMask16SSE2(needle, (*[16]byte)(h[16:]))<<16
}

func eqMask32AVX(needle byte, h *[32]byte) uint32 {
	return eqMask16AVX(needle, (*[16]byte)(h[:16])) |
		eqMask16AVX(needle, (*[16]byte)(h[16:]))<<16
}

func index16SSE2(needle byte, h *[16]byte) int {
	return firstIndex(eqMask16SSE2(needle, h), 16)
}

func index32SSE2(needle byte, h *[32]byte) int {
	return firstIndex(eqMask32SSE2(needle, h), 32)
}

func index16AVX(needle byte, h *[16]byte) int {
	return firstIndex(eqMask16AVX(needle, h), 16)
}

func index32AVX(needle byte, h *[32]byte) int {
	return firstIndex(eqMask32AVX(needle, h), 32)
}

func index32AVX2(needle byte, h *[32]byte) int {
	return firstIndex(eqMask32AVX2(needle, h), 32)
}
