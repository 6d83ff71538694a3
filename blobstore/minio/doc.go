// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is a high-performance, S3-compatible object storage system. This package
// uses the official MinIO Go client library for compatibility with MinIO
// and other S3-compatible storage systems like Ceph, SeaweedFS, and Garage.
//
// # Basic Usage
//
//	client, err := minioblob.NewClient("localhost:9000", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "backups/")
//	entries, err := verify.New(store).SumAll(ctx, names)
//
// NewClient reads credentials from MINIO_ACCESS_KEY and MINIO_SECRET_KEY,
// or from the AWS variables when those are unset. Build a *minio.Client
// directly for any other credential source.
//
// # Features
//
//   - Ranged GETs for parallel chunk reads
//   - Works with any S3-compatible storage (Ceph, Garage, SeaweedFS)
//   - Air-gap friendly (no AWS dependencies required)
package minio
