package crc

// x2n[k] is x^(2^k) mod P in reflected form.
var x2n = makeX2nTable()

func makeX2nTable() *[32]uint32 {
	var t [32]uint32
	p := uint32(1) << 30 // x^1
	for k := range t {
		t[k] = p
		p = multModP(p, p)
	}
	return &t
}

// multModP returns a*b mod P for reflected polynomials a and b.
func multModP(a, b uint32) uint32 {
	m := uint32(1) << 31
	var p uint32
	for {
		if a&m != 0 {
			p ^= b
			if a&(m-1) == 0 {
				break
			}
		}
		m >>= 1
		if b&1 != 0 {
			b = b>>1 ^ ieeeReversed
		} else {
			b >>= 1
		}
	}
	return p
}

// x2nModP returns x^(n*2^k) mod P.
func x2nModP(n uint64, k uint) uint32 {
	p := uint32(1) << 31 // x^0
	for n != 0 {
		if n&1 != 0 {
			p = multModP(x2n[k&31], p)
		}
		n >>= 1
		k++
	}
	return p
}

// CombineGen returns the operator that appends len2 bytes, for use with
// CombineOp when many checksums are combined with the same length.
func CombineGen(len2 int64) uint32 {
	if len2 <= 0 {
		return 1 << 31
	}
	return x2nModP(uint64(len2), 3)
}

// CombineOp combines crc1 and crc2 with an operator from CombineGen.
func CombineOp(crc1, crc2, op uint32) uint32 {
	return multModP(op, crc1) ^ crc2
}

// Combine returns the CRC of A||B given crc1 = CRC(A), crc2 = CRC(B) and
// len2 = len(B).
func Combine(crc1, crc2 uint32, len2 int64) uint32 {
	return CombineOp(crc1, crc2, CombineGen(len2))
}
