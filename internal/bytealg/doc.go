// Package bytealg locates a single byte inside fixed-width buffers of 4, 16
// and 32 bytes.
//
// Every width has a portable scalar scan and a SWAR (SIMD within a register)
// kernel. On amd64 the SSE2, AVX and AVX2 kernels are used when the CPU has
// them, on arm64 the NEON kernels. CPU features are probed once at package
// init and the fastest allowed kernel per width is stored in a function
// variable that is never written again.
//
// Build with -tags noasm to force the pure Go kernels. Set SMALLFIND_ISA to
// one of generic, swar, sse2, avx, avx2 or neon to cap the selection at that
// instruction set.
//
// Kernels report the width of the buffer when the byte is absent. Callers
// that need a length bound apply it on top; see package find.
package bytealg
