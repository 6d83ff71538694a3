package crc

// Reduction constants for the IEEE polynomial
// P(x) = x^32 + x^26 + x^23 + x^22 + x^16 + x^12 + x^11 + x^10 + x^8 + x^7 + x^5 + x^4 + x^2 + x + 1.
//
// Every constant is bit-reflected and shifted left by one so that a carryless
// product of two reflected operands lines up without a correcting shift.

// shiftConstants[n] advances a 128-bit chunk by n*128 bits:
// {x^(128n+32) mod P, x^(128n-32) mod P}. The first value multiplies the low
// quadword, the second the high quadword.
var shiftConstants = [17][2]uint64{
	{0, 0},
	{0x1751997d0, 0x0ccaa009e}, // 1
	{0x0f1da05aa, 0x15a546366}, // 2
	{0x03db1ecdc, 0x174359406}, // 3
	{0x154442bd4, 0x1c6e41596}, // 4
	{0x1c7569e54, 0x0ae0b5394}, // 5
	{0x0df068dc2, 0x18cb44e58}, // 6
	{0x1ea89367e, 0x1d7cfc6ac}, // 7
	{0x1e88ef372, 0x14a7fe880}, // 8
	{0x1fdc60a7c, 0x03f41287a}, // 9
	{0x0e3543be0, 0x14b57d3f0}, // 10
	{0x1816ab61c, 0x10aae2566}, // 11
	{0x1821d8bc0, 0x12e958ac4}, // 12
	{0x1b35adb0e, 0x1e7146aac}, // 13
	{0x19159bb02, 0x125f17dfc}, // 14
	{0x1db06f64c, 0x1c47d2a9c}, // 15
	{0x11542778a, 0x1322d1430}, // 16
}

const (
	// constX96 = x^96 mod P folds 128 bits down to 96.
	constX96 = 0x0ccaa009e
	// constX64 = x^64 mod P folds 96 bits down to 64.
	constX64 = 0x163cd6124
	// constMu = x^64 div P, the Barrett quotient.
	constMu = 0x1f7011641
	// constPoly is P(x) itself, including the x^32 term.
	constPoly = 0x1db710641
)

// ieeeReversed is the reflected polynomial used by the bitwise helpers.
const ieeeReversed = 0xedb88320
