package crc

import (
	"encoding/binary"
	"hash/crc32"
)

// slicing8 holds the IEEE byte table and seven derived tables; slicing8[k][b]
// is the CRC contribution of byte b followed by k zero bytes.
var slicing8 = makeSlicing8(crc32.IEEETable)

func makeSlicing8(base *crc32.Table) *[8][256]uint32 {
	t := new([8][256]uint32)
	t[0] = *base
	for i := 0; i < 256; i++ {
		c := t[0][i]
		for k := 1; k < 8; k++ {
			c = t[0][c&0xff] ^ c>>8
			t[k][i] = c
		}
	}
	return t
}

// updateGeneric is the portable reference: slicing-by-8 over 8-byte groups,
// byte at a time for the rest.
func updateGeneric(crc uint32, p []byte) uint32 {
	t := slicing8
	c := ^crc
	for len(p) >= 8 {
		c ^= binary.LittleEndian.Uint32(p)
		c = t[7][c&0xff] ^ t[6][c>>8&0xff] ^ t[5][c>>16&0xff] ^ t[4][c>>24] ^
			t[3][p[4]] ^ t[2][p[5]] ^ t[1][p[6]] ^ t[0][p[7]]
		p = p[8:]
	}
	for _, b := range p {
		c = t[0][byte(c)^b] ^ c>>8
	}
	return ^c
}

func updateCopyGeneric(crc uint32, dst, src []byte) uint32 {
	mustFit(dst, src)
	copy(dst, src)
	return updateGeneric(crc, src)
}

// mustFit panics when dst cannot hold src. Checking up front guarantees no
// byte is written on a contract violation.
func mustFit(dst, src []byte) {
	if len(dst) < len(src) {
		panic("crc: destination shorter than source")
	}
}
