package bytealg

import "math/bits"

// firstIndex returns the position of the lowest set bit of mask, or width if
// no bit below width is set. An empty mask makes TrailingZeros32 report 32,
// which is folded into the same sentinel.
func firstIndex(mask uint32, width int) int {
	i := bits.TrailingZeros32(mask)
	if i >= width {
		return width
	}
	return i
}
