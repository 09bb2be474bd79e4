package bytealg

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// runnable returns the ISAs that have a kernel for width on this machine.
func runnable(width int) []ISA {
	var out []ISA
	for _, isa := range ISAs() {
		if Available(isa) && Implements(isa, width) {
			out = append(out, isa)
		}
	}
	return out
}

// haystacks16 yields buffers that stress lane boundaries for one needle:
// no match, every single position, first/last pairs and random mixes.
func haystacks16(needle byte, rng *rand.Rand, yield func(*[16]byte)) {
	var h [16]byte
	fill := func(b byte) {
		for i := range h {
			h[i] = b
		}
	}
	for _, bg := range []byte{needle ^ 0x80, needle ^ 0x01, needle + 1} {
		fill(bg)
		yield(&h)
		for i := range h {
			fill(bg)
			h[i] = needle
			yield(&h)
			for j := i + 1; j < len(h); j++ {
				h[j] = needle
				yield(&h)
				h[j] = bg
			}
		}
	}
	fill(needle)
	yield(&h)
	alphabet := [...]byte{needle, needle ^ 0x80, needle ^ 0x01, needle - 1, 0, 0xff}
	for n := 0; n < 64; n++ {
		for i := range h {
			h[i] = alphabet[rng.IntN(len(alphabet))]
		}
		yield(&h)
	}
}

func TestEquivalence16(t *testing.T) {
	var g errgroup.Group
	for _, isa := range runnable(16) {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(uint64(isa), 16))
			var err error
			for n := 0; n < 256 && err == nil; n++ {
				needle := byte(n)
				haystacks16(needle, rng, func(h *[16]byte) {
					if err != nil {
						return
					}
					if got, want := Index16With(isa, needle, h), Scalar16(needle, h); got != want {
						err = fmt.Errorf("%s: Index16(%#x, %v) = %d; want %d", isa, needle, *h, got, want)
						return
					}
					if got, want := kernels.w16[isa].mask(needle, h), scanMask16(needle, h); got != want {
						err = fmt.Errorf("%s: mask16(%#x, %v) = %016b; want %016b", isa, needle, *h, got, want)
					}
				})
			}
			return err
		})
	}
	require.NoError(t, g.Wait())
}

func TestEquivalence32(t *testing.T) {
	var g errgroup.Group
	for _, isa := range runnable(32) {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(uint64(isa), 32))
			var err error
			for n := 0; n < 256 && err == nil; n++ {
				needle := byte(n)
				// Place each 16-byte case in either half, next to a miss or to
				// itself, so matches straddle the register boundary.
				var miss [16]byte
				for i := range miss {
					miss[i] = needle ^ 0x80
				}
				haystacks16(needle, rng, func(h *[16]byte) {
					if err != nil {
						return
					}
					for _, halves := range [3][2]*[16]byte{{h, &miss}, {&miss, h}, {h, h}} {
						var h32 [32]byte
						copy(h32[:16], halves[0][:])
						copy(h32[16:], halves[1][:])
						if got, want := Index32With(isa, needle, &h32), Scalar32(needle, &h32); got != want {
							err = fmt.Errorf("%s: Index32(%#x, %v) = %d; want %d", isa, needle, h32, got, want)
							return
						}
						if got, want := kernels.w32[isa].mask(needle, &h32), scanMask32(needle, &h32); got != want {
							err = fmt.Errorf("%s: mask32(%#x, %v) = %032b; want %032b", isa, needle, h32, got, want)
							return
						}
					}
				})
			}
			return err
		})
	}
	require.NoError(t, g.Wait())
}

func TestEquivalence4(t *testing.T) {
	var g errgroup.Group
	for _, isa := range runnable(4) {
		g.Go(func() error {
			for n := 0; n < 256; n++ {
				needle := byte(n)
				alphabet := [...]byte{needle, needle ^ 0x80, needle ^ 0x01, needle + 1, 0, 0xff}
				for _, a := range alphabet {
					for _, b := range alphabet {
						for _, c := range alphabet {
							for _, d := range alphabet {
								h := [4]byte{a, b, c, d}
								if got, want := Index4With(isa, needle, &h), Scalar4(needle, &h); got != want {
									return fmt.Errorf("%s: Index4(%#x, %v) = %d; want %d", isa, needle, h, got, want)
								}
							}
						}
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestCrossRegisterScenario(t *testing.T) {
	var h [32]byte
	h[4] = 4
	h[6] = 10
	h[20] = 5
	for _, isa := range runnable(32) {
		require.Equal(t, 4, Index32With(isa, 4, &h), isa.String())
		require.Equal(t, 20, Index32With(isa, 5, &h), isa.String())
		require.Equal(t, 6, Index32With(isa, 10, &h), isa.String())
		require.Equal(t, 32, Index32With(isa, 7, &h), isa.String())
	}
	require.Equal(t, 20, Index32(5, &h))
}
