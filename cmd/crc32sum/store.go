package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/hupe1980/crcfold/blobstore"
	"github.com/hupe1980/crcfold/blobstore/minio"
	"github.com/hupe1980/crcfold/blobstore/s3"
)

// storeLocation is a parsed --store value.
type storeLocation struct {
	kind     string // "file", "s3" or "minio"
	path     string // local root
	endpoint string
	secure   bool
	bucket   string
	prefix   string
	region   string
	s3URL    string // custom S3 endpoint
}

func parseStore(raw string) (storeLocation, error) {
	if !strings.Contains(raw, "://") {
		return storeLocation{kind: "file", path: raw}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return storeLocation{}, fmt.Errorf("invalid store %q: %w", raw, err)
	}
	path := strings.TrimPrefix(u.Path, "/")

	switch u.Scheme {
	case "file":
		return storeLocation{kind: "file", path: u.Host + u.Path}, nil

	case "s3":
		if u.Host == "" {
			return storeLocation{}, fmt.Errorf("invalid store %q: missing bucket", raw)
		}
		return storeLocation{
			kind:   "s3",
			bucket: u.Host,
			prefix: path,
			region: u.Query().Get("region"),
			s3URL:  u.Query().Get("endpoint"),
		}, nil

	case "minio", "minio+http":
		bucket, prefix, _ := strings.Cut(path, "/")
		if u.Host == "" || bucket == "" {
			return storeLocation{}, fmt.Errorf("invalid store %q: want %s://host/bucket[/prefix]", raw, u.Scheme)
		}
		return storeLocation{
			kind:     "minio",
			endpoint: u.Host,
			secure:   u.Scheme == "minio",
			bucket:   bucket,
			prefix:   prefix,
		}, nil
	}
	return storeLocation{}, fmt.Errorf("invalid store %q: unsupported scheme %q", raw, u.Scheme)
}

func openStore(ctx context.Context, raw string) (blobstore.BlobStore, error) {
	loc, err := parseStore(raw)
	if err != nil {
		return nil, err
	}

	switch loc.kind {
	case "s3":
		var opts []s3.Option
		if loc.prefix != "" {
			opts = append(opts, s3.WithPrefix(loc.prefix))
		}
		if loc.region != "" {
			opts = append(opts, s3.WithRegion(loc.region))
		}
		if loc.s3URL != "" {
			opts = append(opts, s3.WithEndpoint(loc.s3URL))
		}
		return s3.New(ctx, loc.bucket, opts...)

	case "minio":
		client, err := minio.NewClient(loc.endpoint, loc.secure)
		if err != nil {
			return nil, err
		}
		return minio.NewStore(client, loc.bucket, loc.prefix), nil
	}
	return blobstore.NewLocalStore(loc.path), nil
}
