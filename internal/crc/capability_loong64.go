//go:build loong64

package crc

import "golang.org/x/sys/cpu"

// probe reports CPUCFG word 1 bit 25 (CRC instructions).
func probe() Features {
	return Features{HasCRC32: cpu.Loong64.HasCRC32}
}

// All known LoongArch CPUs implement the CRC instructions.
func baseline() Features {
	return Features{HasCRC32: true}
}
