//go:build amd64 && !noasm

package crc

import "golang.org/x/sys/cpu"

// The assembly kernels are only entered when the executing CPU has the
// instructions. A tier forced onto another CPU takes the portable path.
var (
	useCLMUL  = cpu.X86.HasPCLMULQDQ
	useVCLMUL = cpu.X86.HasAVX512F && cpu.X86.HasAVX512VPCLMULQDQ
)

//go:noescape
func clmulFold(lo, hi uint64, k *[2]uint64) (rlo, rhi uint64)

//go:noescape
func foldBlocksCLMUL(chunks *u128, k *[2]uint64, p []byte)

//go:noescape
func foldBlocksVCLMUL(chunks *u128, k *[2]uint64, p []byte)

// hardware reports whether impl is backed by an instruction-level kernel in
// this build.
func hardware(impl Impl) bool {
	return impl == PCLMUL || impl == VPCLMUL
}

// foldHW advances one chunk by the distance k encodes. It reports false when
// the CPU lacks carryless multiplication.
func foldHW(v u128, k *[2]uint64) (u128, bool) {
	if !useCLMUL {
		return u128{}, false
	}
	lo, hi := clmulFold(v.lo, v.hi, k)
	return u128{lo: lo, hi: hi}, true
}

// foldBlocks advances the first n chunks over every whole n*16-byte block of p.
func foldBlocks(chunks *[maxLanes * maxWidth]u128, n int, p []byte) {
	switch {
	case n == 4 && useCLMUL:
		foldBlocksCLMUL(&chunks[0], &shiftConstants[4], p)
	case n == 16 && useVCLMUL:
		foldBlocksVCLMUL(&chunks[0], &shiftConstants[16], p)
	default:
		foldBlocksGeneric(chunks, n, p)
	}
}

func updateScalar(crc uint32, p []byte) uint32 {
	return updateScalarGeneric(crc, p)
}
