package codec

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrUnknownFormat is returned for format names and values that are not
// recognized.
var ErrUnknownFormat = errors.New("unknown compression format")

// Format identifies a compression format.
type Format uint8

const (
	// None passes data through unchanged.
	None Format = iota
	Gzip
	Zstd
	LZ4
	Snappy
	// Auto selects a format from the stream's magic bytes.
	Auto
)

var formatNames = [...]string{
	None:   "none",
	Gzip:   "gzip",
	Zstd:   "zstd",
	LZ4:    "lz4",
	Snappy: "snappy",
	Auto:   "auto",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ParseFormat returns the format with the given name. "gz", "zst" and "sz"
// are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None, nil
	case "gzip", "gz":
		return Gzip, nil
	case "zstd", "zst":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	case "snappy", "sz":
		return Snappy, nil
	case "auto":
		return Auto, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Magic numbers at the start of each format's stream.
var (
	magicGzip   = []byte{0x1f, 0x8b}
	magicZstd   = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4    = []byte{0x04, 0x22, 0x4d, 0x18}
	magicSnappy = []byte("\xff\x06\x00\x00sNaPpY")
)

// HeaderSize is the number of leading bytes Detect needs to recognize
// every format.
const HeaderSize = 10

// Detect returns the format whose magic number header starts with, or None.
func Detect(header []byte) Format {
	switch {
	case bytes.HasPrefix(header, magicZstd):
		return Zstd
	case bytes.HasPrefix(header, magicLZ4):
		return LZ4
	case bytes.HasPrefix(header, magicSnappy):
		return Snappy
	case bytes.HasPrefix(header, magicGzip):
		return Gzip
	}
	return None
}

// FromExtension guesses the format from a file name.
func FromExtension(name string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".gz", ".tgz":
		return Gzip
	case ".zst":
		return Zstd
	case ".lz4":
		return LZ4
	case ".sz":
		return Snappy
	}
	return None
}

// Extension returns the conventional file extension of f.
func (f Format) Extension() string {
	switch f {
	case Gzip:
		return ".gz"
	case Zstd:
		return ".zst"
	case LZ4:
		return ".lz4"
	case Snappy:
		return ".sz"
	}
	return ""
}
