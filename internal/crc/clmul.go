package crc

import "encoding/binary"

// u128 is one 128-bit fold chunk. lo holds the first eight bytes of the chunk
// in little-endian order.
type u128 struct {
	lo, hi uint64
}

func load128(p []byte) u128 {
	_ = p[15]
	return u128{lo: binary.LittleEndian.Uint64(p), hi: binary.LittleEndian.Uint64(p[8:])}
}

func (v u128) xor(w u128) u128 {
	return u128{lo: v.lo ^ w.lo, hi: v.hi ^ w.hi}
}

// multiplier computes carryless products with one fixed operand of at most
// 60 bits, four bits of the variable operand per step.
type multiplier [16]uint64

func newMultiplier(k uint64) *multiplier {
	var m multiplier
	for i := 1; i < 16; i++ {
		m[i] = clmulSlow(uint64(i), k)
	}
	return &m
}

// mul returns the 128-bit carryless product a*k as (lo, hi).
func (m *multiplier) mul(a uint64) (lo, hi uint64) {
	for s := uint(0); s < 64; s += 4 {
		t := m[a>>s&15]
		lo ^= t << s
		hi ^= t >> (64 - s)
	}
	return lo, hi
}

// clmulSlow multiplies two polynomials over GF(2) whose product fits in 64
// bits. It is only used to build multiplier tables.
func clmulSlow(a, b uint64) uint64 {
	var r uint64
	for ; b != 0; b >>= 1 {
		if b&1 != 0 {
			r ^= a
		}
		a <<= 1
	}
	return r
}

// foldConst advances a chunk by a fixed distance: the low quadword is
// multiplied by x^(d+32) mod P, the high quadword by x^(d-32) mod P, and the
// products are summed.
type foldConst struct {
	raw    *[2]uint64
	lo, hi *multiplier
}

func (k *foldConst) fold(v u128) u128 {
	if r, ok := foldHW(v, k.raw); ok {
		return r
	}
	l1, h1 := k.lo.mul(v.lo)
	l2, h2 := k.hi.mul(v.hi)
	return u128{lo: l1 ^ l2, hi: h1 ^ h2}
}

// foldBlocksGeneric is the portable form of the fold loop: every whole
// n*16-byte block of p advances the first n chunks by n*128 bits.
func foldBlocksGeneric(chunks *[maxLanes * maxWidth]u128, n int, p []byte) {
	k := &shift[n]
	block := n * 16
	for ; len(p) >= block; p = p[block:] {
		for i := 0; i < n; i++ {
			chunks[i] = k.fold(chunks[i]).xor(load128(p[i*16:]))
		}
	}
}

// shift[n] advances a chunk by n*128 bits.
var shift = makeShiftTable()

var (
	mulX96  = newMultiplier(constX96)
	mulX64  = newMultiplier(constX64)
	mulMu   = newMultiplier(constMu)
	mulPoly = newMultiplier(constPoly)
)

func makeShiftTable() *[len(shiftConstants)]foldConst {
	var t [len(shiftConstants)]foldConst
	for n := 1; n < len(shiftConstants); n++ {
		t[n] = foldConst{
			raw: &shiftConstants[n],
			lo: newMultiplier(shiftConstants[n][0]),
			hi: newMultiplier(shiftConstants[n][1]),
		}
	}
	return &t
}

// reduce128 collapses a folded chunk to the 32-bit remainder, still in the
// inverted accumulator domain.
func reduce128(v u128) uint32 {
	// 128 -> 96 bits
	lo, hi := mulX96.mul(v.lo)
	lo ^= v.hi

	// 96 -> 64 bits
	x, _ := mulX64.mul(lo & 0xffffffff)
	x ^= lo>>32 | hi<<32

	// Barrett reduction
	t1, _ := mulMu.mul(x & 0xffffffff)
	t2, _ := mulPoly.mul(t1 & 0xffffffff)
	return uint32((x ^ t2) >> 32)
}
