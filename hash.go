package crcfold

import (
	"encoding/binary"
	"hash"

	"github.com/hupe1980/crcfold/internal/crc"
)

// The marshaled state is magic || seed || crc, all big-endian.
const (
	hashMagic         = "crcf\x01"
	marshaledHashSize = len(hashMagic) + 4 + 4
)

type digest struct {
	k    crc.Kernel
	seed uint32
	crc  uint32
}

var (
	_ hash.Hash32 = (*digest)(nil)
)

// NewHash returns a hash.Hash32 whose checksum starts from seed. Use seed 0
// for a plain CRC-32. The returned hash also implements
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler.
func NewHash(seed uint32) hash.Hash32 {
	return newDigest(active(), seed)
}

func newDigest(k crc.Kernel, seed uint32) *digest {
	return &digest{k: k, seed: seed, crc: seed}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = d.seed }

func (d *digest) Write(p []byte) (int, error) {
	d.crc = d.k.Update(d.crc, p)
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return d.crc }

func (d *digest) Sum(in []byte) []byte {
	return binary.BigEndian.AppendUint32(in, d.crc)
}

func (d *digest) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, hashMagic...)
	b = binary.BigEndian.AppendUint32(b, d.seed)
	b = binary.BigEndian.AppendUint32(b, d.crc)
	return b, nil
}

func (d *digest) MarshalBinary() ([]byte, error) {
	return d.AppendBinary(make([]byte, 0, marshaledHashSize))
}

func (d *digest) UnmarshalBinary(b []byte) error {
	if len(b) != marshaledHashSize || string(b[:len(hashMagic)]) != hashMagic {
		return errInvalidState
	}
	b = b[len(hashMagic):]
	d.seed = binary.BigEndian.Uint32(b)
	d.crc = binary.BigEndian.Uint32(b[4:])
	return nil
}
