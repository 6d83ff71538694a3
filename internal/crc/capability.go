package crc

import (
	"os"
	"strings"
)

// Impl identifies a CRC-32 implementation tier.
type Impl uint8

const (
	// Generic is the portable slicing-by-8 table implementation.
	Generic Impl = iota
	// CRC32 uses one CRC instruction step per data unit (ARMv8 CRC32, LoongArch CRC).
	CRC32
	// PCLMUL folds 4 lanes of 128 bits with carryless multiplication.
	PCLMUL
	// VPCLMUL folds 4 lanes of 512 bits with wide carryless multiplication.
	VPCLMUL
)

// preference lists the tiers in descending order of expected throughput.
var preference = [...]Impl{VPCLMUL, PCLMUL, CRC32, Generic}

// String returns the string representation of an Impl.
func (i Impl) String() string {
	switch i {
	case Generic:
		return "generic"
	case CRC32:
		return "crc32"
	case PCLMUL:
		return "pclmulqdq"
	case VPCLMUL:
		return "vpclmulqdq"
	default:
		return "unknown"
	}
}

// ParseImpl parses a string into an Impl value.
func ParseImpl(s string) (Impl, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "crc32", "armv8", "loongarch":
		return CRC32, true
	case "pclmulqdq", "pclmul", "pmull":
		return PCLMUL, true
	case "vpclmulqdq", "vpclmul":
		return VPCLMUL, true
	default:
		return Generic, false
	}
}

// Features records the instruction set extensions relevant to CRC-32.
type Features struct {
	// x86-64
	HasSSE42      bool
	HasPCLMULQDQ  bool
	HasAVX2       bool
	HasAVX512     bool // F + BW + VL + DQ
	HasVPCLMULQDQ bool

	// ARM64 / LoongArch
	HasCRC32 bool
	HasPMULL bool
	HasEOR3  bool
}

// VectorBits returns the width of the widest usable vector register.
func (f Features) VectorBits() int {
	switch {
	case f.HasAVX512:
		return 512
	case f.HasAVX2:
		return 256
	case f.HasSSE42, f.HasPMULL:
		return 128
	default:
		return 0
	}
}

// String lists the present features, e.g. "sse4.2 pclmulqdq avx2".
func (f Features) String() string {
	var names []string
	add := func(ok bool, name string) {
		if ok {
			names = append(names, name)
		}
	}
	add(f.HasSSE42, "sse4.2")
	add(f.HasPCLMULQDQ, "pclmulqdq")
	add(f.HasAVX2, "avx2")
	add(f.HasAVX512, "avx512")
	add(f.HasVPCLMULQDQ, "vpclmulqdq")
	add(f.HasCRC32, "crc32")
	add(f.HasPMULL, "pmull")
	add(f.HasEOR3, "eor3")
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, " ")
}

// Supports reports whether impl may be selected for a CPU with features f.
// A tier removed at build time is never supported.
func Supports(impl Impl, f Features) bool {
	switch impl {
	case Generic:
		return true
	case CRC32:
		return enableCRC32 && f.HasCRC32
	case PCLMUL:
		return enablePCLMUL && ((f.HasPCLMULQDQ && f.HasSSE42) || f.HasPMULL)
	case VPCLMUL:
		return enableVPCLMUL && f.HasVPCLMULQDQ && f.HasAVX512
	default:
		return false
	}
}

// Bind returns the fastest tier supported by f. Only tiers backed by
// instruction-level kernels in this build rank above Generic; the portable
// renditions of the others stay reachable through NewTableFor and
// CRCFOLD_IMPL. Bind always succeeds because Generic needs no extensions.
func Bind(f Features) Impl {
	for _, impl := range preference {
		if impl == Generic || (hardware(impl) && Supports(impl, f)) {
			return impl
		}
	}
	return Generic
}

// Accelerated reports whether impl runs on CPU instructions in this build
// rather than on its portable rendition.
func Accelerated(impl Impl) bool {
	return hardware(impl)
}

// Detect probes the executing CPU. With the nocpudetect build tag the probe
// is skipped and the static baseline of the target architecture is returned.
func Detect() Features {
	if !runtimeDetection {
		return baseline()
	}
	return probe()
}

// Package-level state - initialized once at package init and never mutated
// afterwards, so concurrent readers need no synchronization.
var (
	detected    Features
	activeImpl  Impl
	active      Kernel
	hasOverride bool
)

func init() {
	detected = Detect()
	activeImpl, hasOverride = selectImpl(detected, os.Getenv("CRCFOLD_IMPL"))
	active = KernelFor(activeImpl)
}

// selectImpl applies a CRCFOLD_IMPL override when it names a supported tier
// and falls back to Bind otherwise. The second result reports whether the
// override named a valid tier at all.
func selectImpl(f Features, override string) (Impl, bool) {
	if override == "" {
		return Bind(f), false
	}
	impl, ok := ParseImpl(override)
	if !ok {
		return Bind(f), false
	}
	if Supports(impl, f) {
		return impl, true
	}
	// Invalid for this CPU - fall through to auto-detection
	return Bind(f), true
}

// Detected returns the features found at package init.
func Detected() Features {
	return detected
}

// ActiveImpl returns the tier bound at package init.
func ActiveImpl() Impl {
	return activeImpl
}

// Active returns the kernel bound at package init.
func Active() Kernel {
	return active
}

// IsOverridden returns true if CRCFOLD_IMPL was set to a valid tier name.
func IsOverridden() bool {
	return hasOverride
}
