//go:build amd64

package crc

import "golang.org/x/sys/cpu"

// probe reads CPUID leaf 1 (SSE4.2, PCLMULQDQ) and leaf 7 sub-leaf 0 (AVX2,
// AVX-512, VPCLMULQDQ) through x/sys/cpu.
func probe() Features {
	return Features{
		HasSSE42:      cpu.X86.HasSSE42,
		HasPCLMULQDQ:  cpu.X86.HasPCLMULQDQ,
		HasAVX2:       cpu.X86.HasAVX2,
		HasAVX512:     cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL && cpu.X86.HasAVX512DQ,
		HasVPCLMULQDQ: cpu.X86.HasAVX512VPCLMULQDQ,
	}
}

// baseline is assumed when probing is disabled at build time.
func baseline() Features {
	return Features{HasSSE42: true, HasPCLMULQDQ: true}
}
