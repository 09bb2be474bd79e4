// Package find locates a byte inside small fixed-width buffers.
//
// Each function takes the buffer as an array pointer, so the width is fixed
// at compile time, plus a logical length: only positions below the length
// count as matches. A length above the buffer width is treated as the width
// and a negative length as zero.
//
// The comparison runs on the widest vector instructions the CPU offers
// (SSE2/AVX/AVX2 on amd64, NEON on arm64) and falls back to pure Go
// elsewhere. All implementations return identical results.
package find

import (
	"unsafe"

	"github.com/mhr3/smallfind/internal/bytealg"
)

// Haystack is the set of buffer shapes the package can search.
type Haystack interface {
	~[4]byte | ~[16]byte | ~[32]byte
}

// In4 returns the index of the first byte of haystack[:length] equal to
// needle. The second result is false when there is no such byte.
func In4(needle byte, haystack *[4]byte, length int) (int, bool) {
	return bound(bytealg.Index4(needle, haystack), 4, length)
}

// In16 is In4 for 16-byte buffers.
func In16(needle byte, haystack *[16]byte, length int) (int, bool) {
	return bound(bytealg.Index16(needle, haystack), 16, length)
}

// In32 is In4 for 32-byte buffers.
func In32(needle byte, haystack *[32]byte, length int) (int, bool) {
	return bound(bytealg.Index32(needle, haystack), 32, length)
}

// In searches any supported buffer shape, including named array types such
// as `type key [16]byte`.
func In[H Haystack](needle byte, haystack *H, length int) (int, bool) {
	p := unsafe.Pointer(haystack)
	switch len(*haystack) {
	case 4:
		return In4(needle, (*[4]byte)(p), length)
	case 16:
		return In16(needle, (*[16]byte)(p), length)
	default:
		return In32(needle, (*[32]byte)(p), length)
	}
}

// Contains4 reports whether needle occurs in haystack[:length].
func Contains4(needle byte, haystack *[4]byte, length int) bool {
	_, ok := In4(needle, haystack, length)
	return ok
}

// Contains16 reports whether needle occurs in haystack[:length].
func Contains16(needle byte, haystack *[16]byte, length int) bool {
	_, ok := In16(needle, haystack, length)
	return ok
}

// Contains32 reports whether needle occurs in haystack[:length].
func Contains32(needle byte, haystack *[32]byte, length int) bool {
	_, ok := In32(needle, haystack, length)
	return ok
}

// bound turns a kernel result into the public one. idx == width is the
// kernel's not-found value and must not leak out as a match even when
// length >= width.
func bound(idx, width, length int) (int, bool) {
	if idx >= width || idx >= length {
		return -1, false
	}
	return idx, true
}
