package crcfold

import (
	"github.com/hupe1980/crcfold/internal/crc"
)

// Size of a CRC-32 checksum in bytes.
const Size = 4

// Impl identifies an implementation tier.
type Impl = crc.Impl

// Implementation tiers in ascending order of speed.
const (
	Generic = crc.Generic
	CRC32   = crc.CRC32
	PCLMUL  = crc.PCLMUL
	VPCLMUL = crc.VPCLMUL
)

// Features is the set of CPU extensions relevant to CRC computation.
type Features = crc.Features

// FoldState is the state of an incremental fold session. The zero value is
// ready to use.
type FoldState = crc.FoldState

// ParseImpl returns the tier with the given name.
func ParseImpl(name string) (Impl, error) {
	impl, ok := crc.ParseImpl(name)
	if !ok {
		return Generic, &ErrUnknownImpl{Name: name}
	}
	return impl, nil
}

// Update returns the CRC-32 of p appended to data whose checksum is crc.
func Update(crc uint32, p []byte) uint32 {
	return active().Update(crc, p)
}

// UpdateCopy copies src into dst and returns the checksum of src continued
// from crc. It panics if dst is shorter than src.
func UpdateCopy(crc uint32, dst, src []byte) uint32 {
	return active().UpdateCopy(crc, dst, src)
}

// Checksum returns the CRC-32 of p.
func Checksum(p []byte) uint32 {
	return active().Update(0, p)
}

// FoldReset prepares s for a new session.
func FoldReset(s *FoldState) {
	active().FoldReset(s)
}

// Fold adds p to the session. initCRC seeds the session on the first call
// after a reset and is ignored afterwards.
func Fold(s *FoldState, p []byte, initCRC uint32) {
	active().Fold(s, p, initCRC)
}

// FoldCopy copies src into dst and adds it to the session. A session started
// by FoldCopy has seed 0.
func FoldCopy(s *FoldState, dst, src []byte) {
	active().FoldCopy(s, dst, src)
}

// FoldFinal returns the checksum of everything folded into s. The session
// stays open.
func FoldFinal(s *FoldState) uint32 {
	return active().FoldFinal(s)
}

// Combine returns the checksum of A followed by B, given crc1 = CRC(A),
// crc2 = CRC(B) and len2 = len(B).
func Combine(crc1, crc2 uint32, len2 int64) uint32 {
	return crc.Combine(crc1, crc2, len2)
}

// ActiveImpl returns the tier bound for this process.
func ActiveImpl() Impl {
	return crc.ActiveImpl()
}

// DetectedFeatures returns the CPU features found at startup.
func DetectedFeatures() Features {
	return crc.Detected()
}

// Supports reports whether impl may be bound on a CPU with features f.
func Supports(impl Impl, f Features) bool {
	return crc.Supports(impl, f)
}

// Accelerated reports whether impl runs on CPU instructions in this build.
// Tiers that are not accelerated are never bound automatically.
func Accelerated(impl Impl) bool {
	return crc.Accelerated(impl)
}

func active() crc.Kernel {
	return crc.Active()
}
