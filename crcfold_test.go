package crcfold

import (
	"os"
	"testing"

	"github.com/hupe1980/crcfold/testutil"
	kcrc32 "github.com/klauspost/crc32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	assert.Equal(t, uint32(0xcbf43926), Checksum([]byte("123456789")))
	assert.Equal(t, uint32(0), Checksum(nil))

	rng := testutil.NewRNG(1)
	for _, n := range []int{1, 15, 16, 63, 64, 65, 256, 1000, 1 << 16} {
		data := rng.Bytes(n)
		assert.Equal(t, kcrc32.ChecksumIEEE(data), Checksum(data), "len=%d", n)
	}
}

func TestUpdateIncremental(t *testing.T) {
	rng := testutil.NewRNG(2)
	data := rng.Bytes(10000)
	var crc uint32
	for _, part := range rng.Split(data, 700) {
		crc = Update(crc, part)
	}
	assert.Equal(t, testutil.ReferenceCRC(0, data), crc)
}

func TestUpdateCopy(t *testing.T) {
	rng := testutil.NewRNG(3)
	src := rng.Bytes(3000)
	dst := make([]byte, len(src)+10)
	crc := UpdateCopy(7, dst, src)
	assert.Equal(t, testutil.ReferenceCRC(7, src), crc)
	assert.Equal(t, src, dst[:len(src)])
	assert.Equal(t, make([]byte, 10), dst[len(src):])

	assert.Panics(t, func() { UpdateCopy(0, dst[:5], src) })
}

func TestFoldSession(t *testing.T) {
	rng := testutil.NewRNG(4)
	data := rng.Bytes(9000)

	var s FoldState
	FoldReset(&s)
	seen := 0
	for _, part := range rng.Split(data, 500) {
		Fold(&s, part, 0x1234)
		seen += len(part)
		require.Equal(t, testutil.ReferenceCRC(0x1234, data[:seen]), FoldFinal(&s))
	}

	var c FoldState
	dst := make([]byte, len(data))
	off := 0
	for _, part := range rng.Split(data, 500) {
		FoldCopy(&c, dst[off:], part)
		off += len(part)
	}
	assert.Equal(t, data, dst)
	assert.Equal(t, Checksum(data), FoldFinal(&c))
}

func TestCombine(t *testing.T) {
	rng := testutil.NewRNG(5)
	a, b := rng.Bytes(333), rng.Bytes(4444)
	whole := append(append([]byte(nil), a...), b...)
	assert.Equal(t, Checksum(whole), Combine(Checksum(a), Checksum(b), int64(len(b))))
}

func TestParseImpl(t *testing.T) {
	impl, err := ParseImpl("pclmulqdq")
	require.NoError(t, err)
	assert.Equal(t, PCLMUL, impl)

	_, err = ParseImpl("sse9")
	var unknown *ErrUnknownImpl
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "sse9", unknown.Name)
}

func TestActiveImplIsSupported(t *testing.T) {
	assert.True(t, Supports(ActiveImpl(), DetectedFeatures()))
	if ActiveImpl() != Generic && os.Getenv("CRCFOLD_IMPL") == "" {
		assert.True(t, Accelerated(ActiveImpl()))
	}
}
