package mem

import (
	"math/bits"
	"sync"
)

const (
	minClassShift = 16 // 64 KiB
	maxClassShift = 26 // 64 MiB
	numClasses    = maxClassShift - minClassShift + 1
)

var pools [numClasses]sync.Pool

// classFor returns the smallest size class holding n bytes, or -1 if n is
// larger than the largest class.
func classFor(n int) int {
	if n <= 1<<minClassShift {
		return 0
	}
	shift := bits.Len(uint(n - 1))
	if shift > maxClassShift {
		return -1
	}
	return shift - minClassShift
}

func classSize(class int) int {
	return 1 << (class + minClassShift)
}

// Get returns an aligned buffer of length n. Its contents are undefined.
// Return it with Put once it is no longer referenced.
func Get(n int) []byte {
	if n <= 0 {
		return nil
	}
	class := classFor(n)
	if class < 0 {
		return AllocAligned(n)
	}
	if v := pools[class].Get(); v != nil {
		return (*v.(*[]byte))[:n]
	}
	return AllocAligned(classSize(class))[:n]
}

// Put returns a buffer obtained from Get to its pool. Buffers of other
// capacities are dropped.
func Put(b []byte) {
	c := cap(b)
	if c < 1<<minClassShift || c&(c-1) != 0 {
		return
	}
	class := classFor(c)
	if class < 0 {
		return
	}
	b = b[:c]
	pools[class].Put(&b)
}
