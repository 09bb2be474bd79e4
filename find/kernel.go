package find

import "github.com/mhr3/smallfind/internal/bytealg"

// Kernel returns the name of the implementation serving buffers of the given
// width, e.g. "avx2", "neon" or "generic". It returns "none" for widths the
// package does not support.
func Kernel(width int) string {
	isa, ok := bytealg.Active(width)
	if !ok {
		return "none"
	}
	return isa.String()
}
