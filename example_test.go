package crcfold_test

import (
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/crcfold"
)

func ExampleChecksum() {
	fmt.Printf("%08x\n", crcfold.Checksum([]byte("123456789")))
	// Output: cbf43926
}

func ExampleFold() {
	var s crcfold.FoldState
	crcfold.FoldReset(&s)
	crcfold.Fold(&s, []byte("12345"), 0)
	crcfold.Fold(&s, []byte("6789"), 0)
	fmt.Printf("%08x\n", crcfold.FoldFinal(&s))
	// Output: cbf43926
}

func ExampleCombine() {
	a := crcfold.Checksum([]byte("1234"))
	b := crcfold.Checksum([]byte("56789"))
	fmt.Printf("%08x\n", crcfold.Combine(a, b, 5))
	// Output: cbf43926
}

func ExampleNew() {
	e, err := crcfold.New(crcfold.WithFeatures(crcfold.Features{}))
	if err != nil {
		panic(err)
	}
	fmt.Println(e.Impl())
	fmt.Printf("%08x\n", e.Checksum([]byte("123456789")))
	// Output:
	// generic
	// cbf43926
}

func ExampleNewReader() {
	r := crcfold.NewReader(strings.NewReader("123456789"))
	if _, err := io.Copy(io.Discard, r); err != nil {
		panic(err)
	}
	fmt.Printf("%08x %d\n", r.Sum32(), r.Count())
	// Output: cbf43926 9
}
