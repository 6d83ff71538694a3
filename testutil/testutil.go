package testutil

import (
	"io"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Fill fills dst with random bytes.
// Locks only once per call.
func (r *RNG) Fill(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Read(dst)
}

// Bytes returns n random bytes.
func (r *RNG) Bytes(n int) []byte {
	b := make([]byte, n)
	r.Fill(b)
	return b
}

var words = []string{"fold", "lane", "carry", "less", "poly", "remainder", "crc", "block", "chunk", "reflect"}

// Text returns n bytes of space-separated words. Unlike Bytes, the result
// compresses well.
func (r *RNG) Text(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := make([]byte, 0, n+16)
	for len(b) < n {
		b = append(b, words[r.rand.Intn(len(words))]...)
		b = append(b, ' ')
	}
	return b[:n]
}

// Split cuts data into consecutive pieces of at most maxPart bytes. Empty
// pieces are included occasionally.
func (r *RNG) Split(data []byte, maxPart int) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	var parts [][]byte
	for len(data) > 0 {
		n := r.rand.Intn(maxPart + 1)
		if n > len(data) {
			n = len(data)
		}
		parts = append(parts, data[:n])
		data = data[n:]
	}
	return parts
}

const ieeeReversed = 0xedb88320

// ReferenceCRC is the textbook bit-at-a-time CRC-32 (IEEE). It is slow and
// independent of every optimized implementation.
func ReferenceCRC(crc uint32, p []byte) uint32 {
	c := ^crc
	for _, b := range p {
		c ^= uint32(b)
		for range 8 {
			if c&1 != 0 {
				c = c>>1 ^ ieeeReversed
			} else {
				c >>= 1
			}
		}
	}
	return ^c
}

// ShortReader returns at most max bytes per Read.
type ShortReader struct {
	R   io.Reader
	Max int
}

func (s *ShortReader) Read(p []byte) (int, error) {
	if len(p) > s.Max {
		p = p[:s.Max]
	}
	return s.R.Read(p)
}
