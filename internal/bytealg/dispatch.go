package bytealg

import "os"

// overrideEnv names the environment variable that caps kernel selection.
const overrideEnv = "SMALLFIND_ISA"

// kernel pairs the match-bitmask primitive of one ISA with the function that
// reduces it to an index. H is one of [4]byte, [16]byte or [32]byte.
type kernel[H any] struct {
	mask  func(needle byte, h *H) uint32
	index func(needle byte, h *H) int
}

func (k kernel[H]) ok() bool {
	return k.mask != nil && k.index != nil
}

// kernelTable holds one entry per ISA and width. Entries an architecture does
// not implement stay zero.
type kernelTable struct {
	w4  [numISA]kernel[[4]byte]
	w16 [numISA]kernel[[16]byte]
	w32 [numISA]kernel[[32]byte]
}

// selection is the set of kernels chosen for the running CPU.
type selection struct {
	index4  func(byte, *[4]byte) int
	index16 func(byte, *[16]byte) int
	index32 func(byte, *[32]byte) int

	isa4, isa16, isa32 ISA
}

// Package-level state, written once by init and read-only afterwards.
var (
	kernels     kernelTable
	active      selection
	hasOverride bool
)

func init() {
	kernels = buildTable(archKernels)
	ceiling, overridden := ceilingFrom(os.Getenv(overrideEnv))
	hasOverride = overridden
	active = selectKernels(&kernels, ceiling)
}

// buildTable adds the portable kernels to the architecture-specific ones.
func buildTable(arch kernelTable) kernelTable {
	t := arch
	t.w4[Generic] = kernel[[4]byte]{mask: scanMask4, index: Scalar4}
	t.w16[Generic] = kernel[[16]byte]{mask: scanMask16, index: Scalar16}
	t.w32[Generic] = kernel[[32]byte]{mask: scanMask32, index: Scalar32}
	t.w4[SWAR] = kernel[[4]byte]{mask: eqMask4SWAR, index: index4SWAR}
	t.w16[SWAR] = kernel[[16]byte]{mask: eqMask16SWAR, index: index16SWAR}
	t.w32[SWAR] = kernel[[32]byte]{mask: eqMask32SWAR, index: index32SWAR}
	return t
}

// ceilingFrom parses the override value. Unknown names and ISAs the CPU lacks
// are ignored so a bad setting can never select an unsupported instruction.
func ceilingFrom(value string) (ISA, bool) {
	if value == "" {
		return NEON, false
	}
	isa, ok := ParseISA(value)
	if !ok || !Available(isa) {
		return NEON, false
	}
	return isa, true
}

// selectKernels picks, per width, the most preferred ISA that is available,
// not above ceiling and implemented for that width.
func selectKernels(t *kernelTable, ceiling ISA) selection {
	var s selection
	s.isa4 = best(ceiling, func(i ISA) bool { return t.w4[i].ok() })
	s.isa16 = best(ceiling, func(i ISA) bool { return t.w16[i].ok() })
	s.isa32 = best(ceiling, func(i ISA) bool { return t.w32[i].ok() })
	s.index4 = t.w4[s.isa4].index
	s.index16 = t.w16[s.isa16].index
	s.index32 = t.w32[s.isa32].index
	return s
}

func best(ceiling ISA, implemented func(ISA) bool) ISA {
	for i := int(ceiling); i > int(Generic); i-- {
		isa := ISA(i)
		if Available(isa) && implemented(isa) {
			return isa
		}
	}
	return Generic
}

// Available reports whether the kernels of isa can run on this CPU and were
// compiled into this binary.
func Available(isa ISA) bool {
	switch isa {
	case Generic, SWAR:
		return true
	case SSE2:
		return hasSSE2
	case AVX:
		return hasAVX
	case AVX2:
		return hasAVX2
	case NEON:
		return hasASIMD
	default:
		return false
	}
}

// Active returns the ISA serving the given width. The result is false for
// widths other than 4, 16 and 32.
func Active(width int) (ISA, bool) {
	switch width {
	case 4:
		return active.isa4, true
	case 16:
		return active.isa16, true
	case 32:
		return active.isa32, true
	default:
		return Generic, false
	}
}

// Overridden reports whether SMALLFIND_ISA was set to a usable value.
func Overridden() bool {
	return hasOverride
}

// Index4 returns the index of the first byte of h equal to needle, or 4.
func Index4(needle byte, h *[4]byte) int {
	return active.index4(needle, h)
}

// Index16 returns the index of the first byte of h equal to needle, or 16.
func Index16(needle byte, h *[16]byte) int {
	return active.index16(needle, h)
}

// Index32 returns the index of the first byte of h equal to needle, or 32.
func Index32(needle byte, h *[32]byte) int {
	return active.index32(needle, h)
}

// Index16With runs the kernel of a specific ISA. When isa is unavailable or
// has no 16-byte kernel the scalar scan is used instead, so the call is
// always safe.
func Index16With(isa ISA, needle byte, h *[16]byte) int {
	if k, ok := lookup(kernels.w16[:], isa); ok {
		return k.index(needle, h)
	}
	return Scalar16(needle, h)
}

// Index32With is the 32-byte counterpart of Index16With.
func Index32With(isa ISA, needle byte, h *[32]byte) int {
	if k, ok := lookup(kernels.w32[:], isa); ok {
		return k.index(needle, h)
	}
	return Scalar32(needle, h)
}

// Index4With is the 4-byte counterpart of Index16With.
func Index4With(isa ISA, needle byte, h *[4]byte) int {
	if k, ok := lookup(kernels.w4[:], isa); ok {
		return k.index(needle, h)
	}
	return Scalar4(needle, h)
}

// Implements reports whether isa has a kernel for width in this build.
func Implements(isa ISA, width int) bool {
	if int(isa) >= numISA {
		return false
	}
	switch width {
	case 4:
		return kernels.w4[isa].ok()
	case 16:
		return kernels.w16[isa].ok()
	case 32:
		return kernels.w32[isa].ok()
	default:
		return false
	}
}

func lookup[H any](row []kernel[H], isa ISA) (kernel[H], bool) {
	if int(isa) >= len(row) || !Available(isa) || !row[isa].ok() {
		return kernel[H]{}, false
	}
	return row[isa], true
}
