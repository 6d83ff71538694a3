//go:build noasm || !(amd64 || arm64)

package crc

func hardware(Impl) bool {
	return false
}

func foldHW(u128, *[2]uint64) (u128, bool) {
	return u128{}, false
}

func foldBlocks(chunks *[maxLanes * maxWidth]u128, n int, p []byte) {
	foldBlocksGeneric(chunks, n, p)
}

func updateScalar(crc uint32, p []byte) uint32 {
	return updateScalarGeneric(crc, p)
}
