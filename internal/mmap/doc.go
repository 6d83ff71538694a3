// Package mmap maps local files read-only so they can be checksummed
// without copying through read buffers.
//
// # Usage
//
//	m, err := mmap.Open("archive.tar")
//	if err != nil { ... }
//	defer m.Close()
//
//	m.Advise(mmap.AccessSequential)
//	sum := crcfold.Checksum(m.Bytes())
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2), with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile (Advise is a no-op)
//
// Empty files map to a nil slice. Close is idempotent; Bytes returns nil
// afterwards, but slices obtained earlier must not be touched once Close
// has been called.
package mmap
