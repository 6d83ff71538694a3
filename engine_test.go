package crcfold

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/hupe1980/crcfold/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var x86Wide = Features{HasSSE42: true, HasPCLMULQDQ: true, HasAVX2: true, HasAVX512: true, HasVPCLMULQDQ: true}

func TestNewDefaultsToProcessBinding(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	assert.Equal(t, ActiveImpl(), e.Impl())
	assert.Equal(t, DetectedFeatures(), e.Features())
	assert.False(t, e.Forced())
}

func TestNewWithFeatures(t *testing.T) {
	e, err := New(WithFeatures(Features{}))
	require.NoError(t, err)
	assert.Equal(t, Generic, e.Impl())

	e, err = New(WithFeatures(x86Wide))
	require.NoError(t, err)
	assert.True(t, Supports(e.Impl(), x86Wide))
}

func TestNewWithImpl(t *testing.T) {
	for _, impl := range []Impl{Generic, CRC32, PCLMUL, VPCLMUL} {
		f := Features{HasSSE42: true, HasPCLMULQDQ: true, HasAVX512: true, HasVPCLMULQDQ: true, HasCRC32: true, HasPMULL: true}
		e, err := New(WithFeatures(f), WithImpl(impl))
		if !Supports(impl, f) {
			// Removed by a build tag.
			require.ErrorIs(t, err, ErrUnsupported)
			continue
		}
		require.NoError(t, err, impl)
		assert.Equal(t, impl, e.Impl())
		assert.True(t, e.Forced())
	}
}

func TestNewUnsupportedImpl(t *testing.T) {
	_, err := New(WithFeatures(Features{}), WithImpl(VPCLMUL))
	require.Error(t, err)

	var unsupported *ErrUnsupportedImpl
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, VPCLMUL, unsupported.Impl)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, err.Error(), "vpclmulqdq")

	assert.Panics(t, func() { MustNew(WithFeatures(Features{}), WithImpl(VPCLMUL)) })
}

func TestEnginesAgree(t *testing.T) {
	rng := testutil.NewRNG(10)
	generic := MustNew(WithFeatures(Features{}))
	fast := MustNew()
	for _, n := range []int{0, 3, 16, 100, 255, 256, 257, 5000} {
		data := rng.Bytes(n)
		seed := rng.Uint32()
		want := testutil.ReferenceCRC(seed, data)
		assert.Equal(t, want, generic.Update(seed, data), "len=%d", n)
		assert.Equal(t, want, fast.Update(seed, data), "len=%d", n)

		dst := make([]byte, n)
		assert.Equal(t, want, fast.UpdateCopy(seed, dst, data))
		assert.Equal(t, data, dst)
	}
}

func TestEngineFoldSession(t *testing.T) {
	rng := testutil.NewRNG(11)
	data := rng.Bytes(4000)
	e := MustNew(WithFeatures(x86Wide))

	var s FoldState
	e.FoldReset(&s)
	for _, part := range rng.Split(data, 300) {
		e.Fold(&s, part, 99)
	}
	assert.Equal(t, testutil.ReferenceCRC(99, data), e.FoldFinal(&s))

	e.FoldReset(&s)
	dst := make([]byte, len(data))
	e.FoldCopy(&s, dst, data)
	assert.Equal(t, e.Checksum(data), e.FoldFinal(&s))
}

func TestEngineLogsBinding(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e, err := New(WithFeatures(Features{}), WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.Contains(out, "crc implementation bound"), out)
	assert.Contains(t, out, "impl=generic")
	assert.Contains(t, out, "features=none")
	assert.NotNil(t, e.Logger())
}
