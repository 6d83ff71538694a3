//go:build !nocpudetect

package crc

const runtimeDetection = true
