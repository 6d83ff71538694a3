package crc

import (
	"encoding/binary"
	"unsafe"
)

// The crc32{b,h,w,d} helpers compute exactly what the ARMv8 CRC32B/H/W/X and
// LoongArch CRC.W.{B,H,W,D}.W instructions compute: one step of the reflected
// IEEE CRC over a single data unit, on the raw (inverted) accumulator.

func crc32b(c uint32, v uint8) uint32 {
	return slicing8[0][byte(c)^v] ^ c>>8
}

func crc32h(c uint32, v uint16) uint32 {
	c ^= uint32(v)
	t := slicing8
	return t[1][c&0xff] ^ t[0][c>>8&0xff] ^ c>>16
}

func crc32w(c uint32, v uint32) uint32 {
	c ^= v
	t := slicing8
	return t[3][c&0xff] ^ t[2][c>>8&0xff] ^ t[1][c>>16&0xff] ^ t[0][c>>24]
}

func crc32d(c uint32, v uint64) uint32 {
	lo := c ^ uint32(v)
	hi := uint32(v >> 32)
	t := slicing8
	return t[7][lo&0xff] ^ t[6][lo>>8&0xff] ^ t[5][lo>>16&0xff] ^ t[4][lo>>24] ^
		t[3][hi&0xff] ^ t[2][hi>>8&0xff] ^ t[1][hi>>16&0xff] ^ t[0][hi>>24]
}

// updateScalarGeneric walks the buffer with decreasing unit sizes until the address
// is 8-byte aligned, consumes doublewords, then finishes with word, halfword
// and byte steps. It backs updateScalar where the CRC instructions are
// unavailable.
func updateScalarGeneric(crc uint32, p []byte) uint32 {
	c := ^crc
	n := len(p)
	if n == 0 {
		return crc
	}
	if n == 1 {
		return ^crc32b(c, p[0])
	}

	if addr := uintptr(unsafe.Pointer(unsafe.SliceData(p))); addr&7 != 0 {
		if addr&1 != 0 {
			c = crc32b(c, p[0])
			p = p[1:]
			addr++
		}
		if len(p) >= 2 && addr&3 != 0 {
			c = crc32h(c, binary.LittleEndian.Uint16(p))
			p = p[2:]
			addr += 2
		}
		if len(p) >= 4 && addr&7 != 0 {
			c = crc32w(c, binary.LittleEndian.Uint32(p))
			p = p[4:]
		}
	}

	for len(p) >= 8 {
		c = crc32d(c, binary.LittleEndian.Uint64(p))
		p = p[8:]
	}
	if len(p) >= 4 {
		c = crc32w(c, binary.LittleEndian.Uint32(p))
		p = p[4:]
	}
	if len(p) >= 2 {
		c = crc32h(c, binary.LittleEndian.Uint16(p))
		p = p[2:]
	}
	if len(p) == 1 {
		c = crc32b(c, p[0])
	}
	return ^c
}

func updateCopyScalar(crc uint32, dst, src []byte) uint32 {
	mustFit(dst, src)
	crc = updateScalar(crc, src)
	copy(dst, src)
	return crc
}
