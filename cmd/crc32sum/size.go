package main

import (
	"github.com/dustin/go-humanize"

	"github.com/hupe1980/crcfold/internal/conv"
)

// byteSize is a kingpin flag value accepting sizes like "4MiB" or "64M".
type byteSize int64

func (b *byteSize) Set(s string) error {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return err
	}
	v, err := conv.Uint64ToInt64(n)
	if err != nil {
		return err
	}
	*b = byteSize(v)
	return nil
}

func (b *byteSize) String() string {
	return humanize.IBytes(uint64(*b))
}
