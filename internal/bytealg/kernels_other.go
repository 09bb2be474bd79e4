//go:build noasm || !(amd64 || arm64)

package bytealg

var (
	hasSSE2  = false
	hasAVX   = false
	hasAVX2  = false
	hasASIMD = false
)

// Only the portable kernels exist in this build.
var archKernels kernelTable
