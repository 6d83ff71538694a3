package codec

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/crcfold/testutil"
)

var compressedFormats = []Format{Gzip, Zstd, LZ4, Snappy}

func compress(t *testing.T, f Format, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(f, &buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func decode(t *testing.T, f Format, src []byte, opts ...Option) []byte {
	t.Helper()
	rc, err := NewReader(f, bytes.NewReader(src), opts...)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	return got
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"", None},
		{"none", None},
		{"gzip", Gzip},
		{"GZ", Gzip},
		{"zstd", Zstd},
		{"zst", Zstd},
		{"lz4", LZ4},
		{"snappy", Snappy},
		{"sz", Snappy},
		{" auto ", Auto},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := ParseFormat("brotli")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatString(t *testing.T) {
	for _, f := range []Format{None, Gzip, Zstd, LZ4, Snappy, Auto} {
		parsed, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	assert.Equal(t, "Format(42)", Format(42).String())
}

func TestDetect(t *testing.T) {
	data := testutil.NewRNG(1).Text(4096)
	for _, f := range compressedFormats {
		src := compress(t, f, data)
		assert.Equal(t, f, Detect(src[:HeaderSize]), f.String())
	}

	assert.Equal(t, None, Detect(data))
	assert.Equal(t, None, Detect(nil))
	assert.Equal(t, None, Detect([]byte{0x1f}))
}

func TestFromExtension(t *testing.T) {
	assert.Equal(t, Gzip, FromExtension("logs/app.log.gz"))
	assert.Equal(t, Zstd, FromExtension("a.ZST"))
	assert.Equal(t, LZ4, FromExtension("a.lz4"))
	assert.Equal(t, Snappy, FromExtension("a.sz"))
	assert.Equal(t, None, FromExtension("a.txt"))
	assert.Equal(t, None, FromExtension("noext"))

	for _, f := range compressedFormats {
		assert.Equal(t, f, FromExtension("x"+f.Extension()))
	}
}

func TestRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(2)
	inputs := map[string][]byte{
		"text":   rng.Text(100_000),
		"random": rng.Bytes(70_000),
	}

	for _, f := range append([]Format{None}, compressedFormats...) {
		for name, data := range inputs {
			t.Run(f.String()+"/"+name, func(t *testing.T) {
				src := compress(t, f, data)
				assert.Equal(t, data, decode(t, f, src), "explicit format")
				assert.Equal(t, data, decode(t, Auto, src), "auto")
			})
		}
	}
}

func TestPooledDecoderReuse(t *testing.T) {
	rng := testutil.NewRNG(3)
	for _, f := range compressedFormats {
		for i := 0; i < 4; i++ {
			data := rng.Text(1000 + i*5000)
			assert.Equal(t, data, decode(t, f, compress(t, f, data)), "%s round %d", f, i)
		}
	}
}

func TestConcurrentDecoders(t *testing.T) {
	data := testutil.NewRNG(4).Text(3 << 20)

	var buf bytes.Buffer
	zw := pgzip.NewWriter(&buf)
	require.NoError(t, zw.SetConcurrency(1<<18, 4))
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	assert.Equal(t, data, decode(t, Gzip, buf.Bytes(), WithConcurrency(4)))
	assert.Equal(t, data, decode(t, Auto, buf.Bytes(), WithConcurrency(4)))
	assert.Equal(t, data, decode(t, Gzip, buf.Bytes()))

	zsrc := compress(t, Zstd, data)
	assert.Equal(t, data, decode(t, Zstd, zsrc, WithConcurrency(4)))
}

func TestAutoPassesThroughPlainData(t *testing.T) {
	assert.Equal(t, []byte("hello"), decode(t, Auto, []byte("hello")))
	assert.Empty(t, decode(t, Auto, nil))
}

func TestCorruptInput(t *testing.T) {
	src := compress(t, Zstd, testutil.NewRNG(5).Text(10_000))
	src = src[:len(src)/2]

	rc, err := NewReader(Zstd, bytes.NewReader(src))
	require.NoError(t, err)
	defer rc.Close()
	_, err = io.ReadAll(rc)
	assert.Error(t, err)

	_, err = NewReader(Gzip, bytes.NewReader([]byte("not gzip")))
	assert.Error(t, err)
}

func TestUnknownFormat(t *testing.T) {
	_, err := NewReader(Format(99), bytes.NewReader(nil))
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	_, err = NewWriter(Auto, io.Discard)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestCloseIsIdempotent(t *testing.T) {
	src := compress(t, LZ4, []byte("abc"))
	rc, err := NewReader(LZ4, bytes.NewReader(src))
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.NoError(t, rc.Close())
}
