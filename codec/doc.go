// Package codec decodes compressed inputs so checksums can be taken over
// their decoded content.
//
// Supported formats are gzip, zstd, lz4 (frame format) and snappy (framed
// format). Auto sniffs the format from the first bytes of the stream and
// passes unrecognized data through unchanged:
//
//	rc, err := codec.NewReader(codec.Auto, r)
//	if err != nil { ... }
//	defer rc.Close()
//	sum, err := io.Copy(crcfold.NewWriter(io.Discard), rc)
//
// WithConcurrency decodes gzip with read-ahead goroutines (pgzip) and zstd
// with concurrent block decoders. Single-threaded decoders are pooled.
package codec
