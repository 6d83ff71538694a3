// Package blobstore provides read access to the data crcfold checksums.
//
// BlobStore is the interface for listing and opening immutable blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, memory-mapped
//   - MemoryStore: in-process map, for tests
//   - s3.Store: Amazon S3 with ranged GETs
//   - minio.Store: MinIO and other S3-compatible servers
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    List(ctx, prefix) ([]string, error)
//	}
//
//	type Blob interface {
//	    ReadAt(ctx, p, off) (int, error)
//	    ReadRange(ctx, off, length) (io.ReadCloser, error)
//	    Size() int64
//	    Close() error
//	}
//
// Blobs whose contents are already addressable (local mappings, memory)
// also implement Mappable, which lets the verifier checksum them without
// copying.
package blobstore
