// Package crcfold computes CRC-32 (IEEE 802.3) checksums with the fastest
// algorithm the running CPU supports.
//
// # Quick Start
//
//	sum := crcfold.Checksum(data)                // fresh checksum
//	sum = crcfold.Update(sum, more)               // continue it
//	sum = crcfold.UpdateCopy(sum, dst, src)       // copy and checksum in one pass
//
// CPU features are probed once when the package is loaded and one of four
// tiers is bound for the lifetime of the process:
//
//	generic     slicing-by-8 tables
//	crc32       one CRC step per 8/4/2/1 bytes (ARMv8 CRC32, LoongArch CRC)
//	pclmulqdq   carryless-multiply folding over 4 lanes of 128 bits
//	vpclmulqdq  carryless-multiply folding over 4 lanes of 512 bits
//
// All tiers return identical results. The CRCFOLD_IMPL environment variable
// forces a tier when the CPU supports it.
//
// # Engines
//
// An Engine is an independently bound instance. Use it to pin a tier or to
// pretend a CPU lacks features:
//
//	e, err := crcfold.New(crcfold.WithImpl(crcfold.PCLMUL))
//	e, _ = crcfold.New(crcfold.WithFeatures(crcfold.Features{})) // generic
//
// # Fold Sessions
//
// A FoldState accumulates a checksum over data arriving in pieces:
//
//	var s crcfold.FoldState
//	crcfold.FoldReset(&s)
//	crcfold.Fold(&s, part1, 0)
//	crcfold.Fold(&s, part2, 0) // seed of later calls is ignored
//	sum := crcfold.FoldFinal(&s)
//
// FoldFinal may be called at any point without ending the session.
//
// # Streaming
//
// NewHash returns a hash.Hash32; NewReader and NewWriter checksum data as
// it passes through an io.Reader or io.Writer.
package crcfold
