//go:build !noasm && amd64 && goexperiment.simd

package bytealg

import "simd/archsimd"

// archsimd lowers the 128-bit broadcast to VPBROADCASTB, so the 16-byte
// kernel needs AVX2 as well.
var (
	hasAVX  = archsimd.X86.AVX() && archsimd.X86.AVX2()
	hasAVX2 = hasAVX
)

func eqMask16AVX(needle byte, h *[16]byte) uint32 {
	v := archsimd.LoadUint8x16(h)
	return uint32(v.Equal(archsimd.BroadcastUint8x16(needle)).ToBits())
}

func eqMask32AVX2(needle byte, h *[32]byte) uint32 {
	v := archsimd.LoadUint8x32(h)
	m := v.Equal(archsimd.BroadcastUint8x32(needle)).ToBits()
	archsimd.ClearAVXUpperBits()
	return m
}
