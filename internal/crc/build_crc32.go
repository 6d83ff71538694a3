//go:build !nocrc32

package crc

const enableCRC32 = true
