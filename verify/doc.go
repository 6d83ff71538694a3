// Package verify computes and checks CRC-32 manifests over the blobs of a
// blobstore.BlobStore.
//
// A manifest lists one blob per line as eight lowercase hex digits, two
// spaces and the blob name:
//
//	cbf43926  data/part-0001.bin
//
// Uncompressed blobs are split into chunks that are checksummed in parallel
// and merged with crcfold.Combine in chunk order, so the result equals a
// sequential checksum. Compressed blobs (WithFormat) are decoded and
// checksummed as a stream.
//
//	v := verify.New(blobstore.NewLocalStore(dir))
//	entries, err := v.SumAll(ctx, names)
//	...
//	report, err := v.Check(ctx, entries)
//	if report.Failed() { ... }
package verify
