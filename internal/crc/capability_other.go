//go:build !amd64 && !arm64 && !loong64

package crc

func probe() Features {
	return Features{}
}

func baseline() Features {
	return Features{}
}
