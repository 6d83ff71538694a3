//go:build arm64 && !noasm

package crc

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

var (
	useCRC32 = cpu.ARM64.HasCRC32 || runtime.GOOS == "darwin"
	usePMULL = cpu.ARM64.HasPMULL || runtime.GOOS == "darwin"
)

//go:noescape
func clmulFold(lo, hi uint64, k *[2]uint64) (rlo, rhi uint64)

//go:noescape
func foldBlocksPMULL(chunks *u128, k *[2]uint64, p []byte)

//go:noescape
func updateCRC32(crc uint32, p []byte) uint32

func hardware(impl Impl) bool {
	return impl == CRC32 || impl == PCLMUL
}

func foldHW(v u128, k *[2]uint64) (u128, bool) {
	if !usePMULL {
		return u128{}, false
	}
	lo, hi := clmulFold(v.lo, v.hi, k)
	return u128{lo: lo, hi: hi}, true
}

// foldBlocks advances the first n chunks over every whole n*16-byte block of p.
func foldBlocks(chunks *[maxLanes * maxWidth]u128, n int, p []byte) {
	if n == 4 && usePMULL {
		foldBlocksPMULL(&chunks[0], &shiftConstants[4], p)
		return
	}
	foldBlocksGeneric(chunks, n, p)
}

func updateScalar(crc uint32, p []byte) uint32 {
	if !useCRC32 || len(p) == 0 {
		return updateScalarGeneric(crc, p)
	}
	return ^updateCRC32(^crc, p)
}
