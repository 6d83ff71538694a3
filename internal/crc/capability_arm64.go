//go:build arm64

package crc

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func probe() Features {
	// Apple Silicon always has CRC32 and PMULL but older x/sys/cpu
	// versions could not read the darwin sysctls.
	darwin := runtime.GOOS == "darwin"
	return Features{
		HasCRC32: cpu.ARM64.HasCRC32 || darwin,
		HasPMULL: cpu.ARM64.HasPMULL || darwin,
		HasEOR3:  cpu.ARM64.HasSHA3,
	}
}

// baseline is assumed when probing is disabled at build time. CRC32 is
// mandatory from ARMv8.1.
func baseline() Features {
	return Features{HasCRC32: true, HasPMULL: true}
}
