// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("archives/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	v := verify.New(store)
//	entries, err := v.SumAll(ctx, names)
//
// # Features
//
//   - Ranged GETs, so chunks of one object are fetched in parallel
//   - Automatic pagination for listing
//   - Custom endpoints with path-style addressing for S3-compatible servers
//   - Configurable prefix for multi-tenant isolation
package s3
