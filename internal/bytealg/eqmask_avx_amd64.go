//go:build !noasm && amd64 && !goexperiment.simd

package bytealg

import "golang.org/x/sys/cpu"

var (
	hasAVX  = cpu.X86.HasAVX
	hasAVX2 = cpu.X86.HasAVX && cpu.X86.HasAVX2
)

// eqMask16AVX is the VEX-encoded form of eqMask16SSE2. Requires AVX.
//
//go:noescape
func eqMask16AVX(needle byte, h *[16]byte) uint32

// eqMask32AVX2 compares all 32 bytes with one 256-bit VPCMPEQB. Requires AVX2.
//
//go:noescape
func eqMask32AVX2(needle byte, h *[32]byte) uint32
