package bytealg

import "strings"

// ISA identifies one kernel family.
//
// The order matters: a higher value is preferred over a lower one when both
// are available, and SMALLFIND_ISA caps the selection at a given value.
type ISA uint8

const (
	// Generic is the byte-by-byte scan.
	Generic ISA = iota
	// SWAR compares 8 bytes at a time inside uint64 registers.
	SWAR
	// SSE2 uses 128-bit PCMPEQB/PMOVMSKB (amd64 baseline).
	SSE2
	// AVX uses VEX-encoded 128-bit compares.
	AVX
	// AVX2 uses a single 256-bit compare for 32-byte buffers.
	AVX2
	// NEON uses 128-bit CMEQ on arm64.
	NEON

	numISA = int(NEON) + 1
)

// String returns the lower-case name of the ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case SWAR:
		return "swar"
	case SSE2:
		return "sse2"
	case AVX:
		return "avx"
	case AVX2:
		return "avx2"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseISA parses a name produced by String. Case and surrounding spaces are
// ignored.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "swar":
		return SWAR, true
	case "sse2":
		return SSE2, true
	case "avx":
		return AVX, true
	case "avx2":
		return AVX2, true
	case "neon":
		return NEON, true
	default:
		return Generic, false
	}
}

// ISAs lists every ISA from least to most preferred.
func ISAs() []ISA {
	return []ISA{Generic, SWAR, SSE2, AVX, AVX2, NEON}
}
