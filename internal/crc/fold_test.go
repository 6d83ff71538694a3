package crc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldMatchesOneShot(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, n := range testLengths {
		data := randomBytes(rng, n)
		for _, seed := range testSeeds {
			want := bitwiseCRC(seed, data)
			for _, k := range Kernels() {
				var s FoldState
				k.FoldReset(&s)
				k.Fold(&s, data, seed)
				require.Equal(t, want, k.FoldFinal(&s), "impl=%s len=%d seed=%#x", k.Impl(), n, seed)
				require.Equal(t, k.Update(seed, data), k.FoldFinal(&s), "impl=%s len=%d", k.Impl(), n)
			}
		}
	}
}

func TestFoldRandomSplitsAreResumable(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for trial := 0; trial < 60; trial++ {
		data := randomBytes(rng, rng.Intn(3000))
		seed := rng.Uint32()
		for _, k := range Kernels() {
			var s FoldState
			k.FoldReset(&s)
			done := 0
			for done < len(data) {
				n := rng.Intn(len(data) - done + 1)
				if rng.Intn(4) == 0 {
					n = rng.Intn(20)
				}
				if done+n > len(data) {
					n = len(data) - done
				}
				k.Fold(&s, data[done:done+n], seed)
				done += n
				// FoldFinal in the middle of a session must not disturb it.
				require.Equal(t, bitwiseCRC(seed, data[:done]), k.FoldFinal(&s), "impl=%s done=%d", k.Impl(), done)
			}
			assert.Equal(t, bitwiseCRC(seed, data), k.FoldFinal(&s), k.Impl())
		}
	}
}

func TestFoldFinalTerminalPattern(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	first := randomBytes(rng, 700)
	second := randomBytes(rng, 300)
	for _, k := range Kernels() {
		var s FoldState
		k.FoldReset(&s)
		k.Fold(&s, first, 0)
		require.Equal(t, bitwiseCRC(0, first), k.FoldFinal(&s))

		// A reset after finalization starts an unrelated session.
		k.FoldReset(&s)
		k.Fold(&s, second, 5)
		assert.Equal(t, bitwiseCRC(5, second), k.FoldFinal(&s), k.Impl())
		k.FoldReset(&s)
		assert.Equal(t, FoldState{}, s, k.Impl())
	}
}

func TestFoldSeedIsFixedByFirstCall(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	data := randomBytes(rng, 500)
	for _, k := range Kernels() {
		var s FoldState
		k.FoldReset(&s)
		k.Fold(&s, data[:123], 42)
		k.Fold(&s, data[123:], 0xdeadbeef)
		assert.Equal(t, bitwiseCRC(42, data), k.FoldFinal(&s), k.Impl())
	}
}

func TestFoldZeroValueState(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	data := randomBytes(rng, 1000)
	for _, k := range Kernels() {
		var s FoldState
		assert.Equal(t, uint32(0), k.FoldFinal(&s), k.Impl())
		k.Fold(&s, data, 3)
		assert.Equal(t, bitwiseCRC(3, data), k.FoldFinal(&s), k.Impl())
	}
}

func TestFoldCopy(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	src := randomBytes(rng, 5000)
	for _, k := range Kernels() {
		dst := make([]byte, len(src))
		var s FoldState
		k.FoldReset(&s)
		off := 0
		for off < len(src) {
			n := 1 + rng.Intn(400)
			if off+n > len(src) {
				n = len(src) - off
			}
			k.FoldCopy(&s, dst[off:], src[off:off+n])
			off += n
		}
		assert.Equal(t, src, dst, k.Impl())
		assert.Equal(t, bitwiseCRC(0, src), k.FoldFinal(&s), k.Impl())
	}
}

func TestFoldCopyShortDestination(t *testing.T) {
	for _, k := range Kernels() {
		var s FoldState
		assert.Panics(t, func() { k.FoldCopy(&s, make([]byte, 3), make([]byte, 4)) }, k.Impl())
	}
}

func TestFoldPendingBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	data := randomBytes(rng, 1000)

	var s FoldState
	fold128.Fold(&s, data[:100], 0)
	assert.Equal(t, 100%64, s.Len())

	s = FoldState{}
	fold512.Fold(&s, data[:100], 0)
	assert.Equal(t, 100, s.Len())
	fold512.Fold(&s, data[100:600], 0)
	assert.Equal(t, 600%256, s.Len())
	assert.Equal(t, bitwiseCRC(0, data[:600]), fold512.FoldFinal(&s))
}

func TestWideAndNarrowFoldAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(18))
	for n := 0; n <= 1100; n += 7 {
		data := randomBytes(rng, n)
		seed := rng.Uint32()
		require.Equal(t, fold128.Update(seed, data), fold512.Update(seed, data), "len=%d", n)
	}
}

func BenchmarkFold(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	data := randomBytes(rng, 32<<10)
	for _, k := range []Kernel{fold128, fold512} {
		b.Run(k.Impl().String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			var s FoldState
			for b.Loop() {
				k.FoldReset(&s)
				for off := 0; off < len(data); off += 1000 {
					end := min(off+1000, len(data))
					k.Fold(&s, data[off:end], 0)
				}
				_ = k.FoldFinal(&s)
			}
		})
	}
}
