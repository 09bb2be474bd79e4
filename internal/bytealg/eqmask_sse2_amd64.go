//go:build !noasm && amd64

package bytealg

// eqMask16SSE2 returns a bitmask with bit i set when h[i] == needle.
// Implemented in eqmask_sse2_amd64.s. SSE2 is part of the amd64 baseline.
//
//go:noescape
func eqMask16SSE2(needle byte, h *[16]byte) uint32
