// Package crc computes CRC-32 (IEEE 802.3, bit-reflected) checksums with
// runtime-selected algorithms.
//
// # Implementation Tiers
//
//   - generic: slicing-by-8 table lookup, always available
//   - crc32: one CRC step per doubleword/word/halfword/byte (ARMv8 CRC32, LoongArch CRC)
//   - pclmulqdq: carryless-multiplication folding, 4 lanes of 128 bits (x86 PCLMULQDQ, arm64 PMULL)
//   - vpclmulqdq: carryless-multiplication folding, 4 lanes of 512 bits (x86 AVX-512 + VPCLMULQDQ)
//
// CPU features are probed once at package init and the fastest supported
// tier is bound for the lifetime of the process. The folding tiers run on
// assembly kernels (PCLMULQDQ and VPCLMULQDQ on amd64, PMULL on arm64) and
// the crc32 tier on the arm64 CRC32 instructions. A tier without such a
// kernel in the current build keeps a portable Go rendition that produces the
// same results but is never bound automatically. Set CRCFOLD_IMPL to one of
// the names above to force a tier; the override is ignored when the CPU
// does not support it.
//
// # Build Tags
//
//   - nocpudetect: skip probing and assume the static baseline of GOARCH
//   - noasm: build the portable renditions only
//   - nocrc32, nopclmul, novpclmul: remove a tier from selection entirely
//
// # Fold Sessions
//
// FoldReset, Fold, FoldCopy and FoldFinal expose the folding engine as an
// incremental protocol. FoldFinal does not consume the session: more data
// may be folded afterwards and FoldFinal called again.
//
// All tiers produce bit-identical results for the same input.
package crc
