package main

import (
	"bytes"
	"context"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestSumAndCheck(t *testing.T) {
	files := map[string]string{
		"a.txt":        "123456789",
		"logs/b.log":   strings.Repeat("log line\n", 5000),
		"logs/c.empty": "",
	}
	dir := writeTree(t, files)

	code, out, stderr := runCmd(t, "sum", "--store", dir, "--chunk-size", "1KiB", "--workers", "3")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, fmt.Sprintf("cbf43926  a.txt\n%08x  logs/b.log\n00000000  logs/c.empty\n",
		crc32.ChecksumIEEE([]byte(files["logs/b.log"]))), out)

	manifest := filepath.Join(t.TempDir(), "sums.crc")
	require.NoError(t, os.WriteFile(manifest, []byte(out), 0o644))

	code, out, stderr = runCmd(t, "check", "--store", "file://"+dir, manifest)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "a.txt: OK")
	assert.Contains(t, out, "logs/b.log: OK")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("12345678X"), 0o644))
	require.NoError(t, os.Remove(filepath.Join(dir, "logs", "c.empty")))

	code, out, _ = runCmd(t, "check", "-q", "--store", dir, manifest)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "a.txt: FAILED")
	assert.Contains(t, out, "logs/c.empty: MISSING")
	assert.NotContains(t, out, "logs/b.log: OK")
	assert.Contains(t, out, "2 of 3 blobs failed")
}

func TestSumPrefixAndNames(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"x/1": "one",
		"x/2": "two",
		"y/3": "three",
	})

	code, out, stderr := runCmd(t, "sum", "--store", dir, "--prefix", "x/")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.NotContains(t, out, "y/3")

	code, out, stderr = runCmd(t, "sum", "--store", dir, "y/3", "x/1")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, fmt.Sprintf("%08x  y/3\n%08x  x/1\n",
		crc32.ChecksumIEEE([]byte("three")), crc32.ChecksumIEEE([]byte("one"))), out)

	code, _, stderr = runCmd(t, "sum", "--store", dir, "--prefix", "x/", "y/3")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "mutually exclusive")
}

func TestSumDecompress(t *testing.T) {
	dir := t.TempDir()
	code, out, stderr := runCmd(t, "sum", "--store", dir, "--decompress", "auto")
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, out)

	code, _, stderr = runCmd(t, "sum", "--store", dir, "--decompress", "brotli")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown compression format")
}

func TestSumForcedImpl(t *testing.T) {
	dir := writeTree(t, map[string]string{"a": "123456789"})

	code, out, stderr := runCmd(t, "sum", "--store", dir, "--impl", "generic", "--log-level", "debug", "--log-json")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "cbf43926  a\n", out)
	assert.Contains(t, stderr, `"impl":"generic"`)

	code, _, stderr = runCmd(t, "sum", "--store", dir, "--impl", "sse9")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "sse9")
}

func TestSumMissingBlob(t *testing.T) {
	code, _, stderr := runCmd(t, "sum", "--store", t.TempDir(), "nope")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "nope")
}

func TestBadUsage(t *testing.T) {
	code, _, stderr := runCmd(t, "frobnicate")
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, stderr)

	code, _, _ = runCmd(t, "sum", "--rate", "lots")
	assert.Equal(t, 2, code)
}

func TestCPU(t *testing.T) {
	code, out, stderr := runCmd(t, "cpu", "--self-test")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "impl:")
	assert.Contains(t, out, "usable:    generic")
	assert.Contains(t, out, "self-test: generic  ok")
	assert.NotContains(t, out, "FAILED")
}

func TestParseStore(t *testing.T) {
	tests := []struct {
		raw  string
		want storeLocation
	}{
		{"", storeLocation{kind: "file"}},
		{"data/dir", storeLocation{kind: "file", path: "data/dir"}},
		{"file:///srv/data", storeLocation{kind: "file", path: "/srv/data"}},
		{"file://rel/dir", storeLocation{kind: "file", path: "rel/dir"}},
		{"s3://bucket", storeLocation{kind: "s3", bucket: "bucket"}},
		{"s3://bucket/logs/2024?region=eu-west-1&endpoint=http://localhost:4566", storeLocation{
			kind: "s3", bucket: "bucket", prefix: "logs/2024", region: "eu-west-1", s3URL: "http://localhost:4566",
		}},
		{"minio://play.min.io/bkt/pre/fix", storeLocation{
			kind: "minio", endpoint: "play.min.io", secure: true, bucket: "bkt", prefix: "pre/fix",
		}},
		{"minio+http://localhost:9000/bkt", storeLocation{
			kind: "minio", endpoint: "localhost:9000", bucket: "bkt",
		}},
	}
	for _, tt := range tests {
		got, err := parseStore(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}

	for _, bad := range []string{"s3://", "minio://host", "gs://bucket", "minio://host/"} {
		_, err := parseStore(bad)
		assert.Error(t, err, bad)
	}
}

func TestByteSize(t *testing.T) {
	var b byteSize
	require.NoError(t, b.Set("4MiB"))
	assert.Equal(t, byteSize(4<<20), b)
	require.NoError(t, b.Set("1000"))
	assert.Equal(t, byteSize(1000), b)
	assert.Error(t, b.Set("many"))
	assert.Equal(t, "1000 B", b.String())
}
