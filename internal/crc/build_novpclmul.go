//go:build novpclmul

package crc

const enableVPCLMUL = false
