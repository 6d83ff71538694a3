//go:build nopclmul

package crc

const enablePCLMUL = false
