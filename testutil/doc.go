// Package testutil provides testing utilities for crcfold.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded random data, a bit-at-a-time reference CRC and readers
// that exercise short reads.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	data := rng.Bytes(1 << 20)
//	parts := rng.Split(data, 300)   // random-sized pieces
//	text := rng.Text(4096)          // compressible input
//
// # Reference Checksum
//
//	want := testutil.ReferenceCRC(0, data)
package testutil
