package crc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	noFeatures = Features{}
	x86Legacy  = Features{HasSSE42: true}
	x86Clmul   = Features{HasSSE42: true, HasPCLMULQDQ: true, HasAVX2: true}
	x86Wide    = Features{HasSSE42: true, HasPCLMULQDQ: true, HasAVX2: true, HasAVX512: true, HasVPCLMULQDQ: true}
	armCRC     = Features{HasCRC32: true}
	armPmull   = Features{HasCRC32: true, HasPMULL: true, HasEOR3: true}
	allFlags   = Features{
		HasSSE42: true, HasPCLMULQDQ: true, HasAVX2: true, HasAVX512: true, HasVPCLMULQDQ: true,
		HasCRC32: true, HasPMULL: true, HasEOR3: true,
	}
)

func TestImplString(t *testing.T) {
	for _, impl := range []Impl{Generic, CRC32, PCLMUL, VPCLMUL} {
		parsed, ok := ParseImpl(impl.String())
		require.True(t, ok, impl.String())
		assert.Equal(t, impl, parsed)
	}
	assert.Equal(t, "unknown", Impl(200).String())
}

func TestParseImpl(t *testing.T) {
	tests := []struct {
		in   string
		want Impl
		ok   bool
	}{
		{"generic", Generic, true},
		{" PCLMUL ", PCLMUL, true},
		{"pmull", PCLMUL, true},
		{"armv8", CRC32, true},
		{"VPCLMULQDQ", VPCLMUL, true},
		{"avx2", Generic, false},
		{"", Generic, false},
	}
	for _, tc := range tests {
		got, ok := ParseImpl(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestBind(t *testing.T) {
	tests := []struct {
		name string
		f    Features
		want Impl
	}{
		{"no features", noFeatures, Generic},
		{"sse4.2 without pclmul", x86Legacy, Generic},
		{"pclmul", x86Clmul, PCLMUL},
		{"pclmul without sse4.2", Features{HasPCLMULQDQ: true}, Generic},
		{"vpclmul", x86Wide, VPCLMUL},
		{"vpclmul without avx512", Features{HasSSE42: true, HasPCLMULQDQ: true, HasVPCLMULQDQ: true}, PCLMUL},
		{"arm crc32", armCRC, CRC32},
		{"arm pmull", armPmull, PCLMUL},
		{"everything", allFlags, VPCLMUL},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := tc.want
			// Tiers removed by build tags or without a hardware kernel on
			// this GOARCH fall through to the next one.
			for want != Generic && (!Supports(want, tc.f) || !hardware(want)) {
				want = next(want)
			}
			assert.Equal(t, want, Bind(tc.f))
			assert.Equal(t, want, NewTable(tc.f).Impl())
		})
	}
}

// next returns the tier after impl in preference order.
func next(impl Impl) Impl {
	for i, p := range preference {
		if p == impl && i+1 < len(preference) {
			return preference[i+1]
		}
	}
	return Generic
}

func TestBindIsTotal(t *testing.T) {
	// Every combination of flags binds a kernel whose requirements hold.
	for mask := 0; mask < 1<<8; mask++ {
		f := Features{
			HasSSE42:      mask&1 != 0,
			HasPCLMULQDQ:  mask&2 != 0,
			HasAVX2:       mask&4 != 0,
			HasAVX512:     mask&8 != 0,
			HasVPCLMULQDQ: mask&16 != 0,
			HasCRC32:      mask&32 != 0,
			HasPMULL:      mask&64 != 0,
			HasEOR3:       mask&128 != 0,
		}
		impl := Bind(f)
		require.True(t, Supports(impl, f), "mask %08b bound %s", mask, impl)
		if impl != Generic {
			assert.True(t, hardware(impl), "mask %08b bound portable %s", mask, impl)
		}
		for _, better := range preference {
			if better == impl {
				break
			}
			assert.False(t, Supports(better, f) && hardware(better), "mask %08b skipped %s", mask, better)
		}
	}
}

func TestBindSkipsPortableTiers(t *testing.T) {
	for _, impl := range preference {
		if impl == Generic || hardware(impl) {
			continue
		}
		// A CPU claiming every feature still never binds a tier that would
		// only run its portable rendition.
		assert.NotEqual(t, impl, Bind(allFlags))
		table, ok := NewTableFor(allFlags, impl)
		if Supports(impl, allFlags) {
			require.True(t, ok)
			assert.Equal(t, impl, table.Impl())
		}
	}
	assert.True(t, Accelerated(Bind(allFlags)) || Bind(allFlags) == Generic)
}

func TestSelectImpl(t *testing.T) {
	impl, overridden := selectImpl(x86Clmul, "")
	assert.Equal(t, Bind(x86Clmul), impl)
	assert.False(t, overridden)

	impl, overridden = selectImpl(x86Clmul, "generic")
	assert.Equal(t, Generic, impl)
	assert.True(t, overridden)

	// Unsupported override falls back to auto-detection.
	impl, overridden = selectImpl(noFeatures, "vpclmulqdq")
	assert.Equal(t, Generic, impl)
	assert.True(t, overridden)

	impl, overridden = selectImpl(x86Clmul, "bogus")
	assert.Equal(t, Bind(x86Clmul), impl)
	assert.False(t, overridden)
}

func TestFeatures(t *testing.T) {
	assert.Equal(t, "none", noFeatures.String())
	assert.Equal(t, "sse4.2 pclmulqdq avx2", x86Clmul.String())
	assert.Equal(t, "crc32 pmull eor3", armPmull.String())

	assert.Equal(t, 0, noFeatures.VectorBits())
	assert.Equal(t, 128, x86Legacy.VectorBits())
	assert.Equal(t, 256, x86Clmul.VectorBits())
	assert.Equal(t, 512, x86Wide.VectorBits())
	assert.Equal(t, 128, armPmull.VectorBits())
}

func TestActiveBinding(t *testing.T) {
	require.NotNil(t, Active())
	assert.Equal(t, ActiveImpl(), Active().Impl())
	assert.True(t, Supports(ActiveImpl(), Detected()))
	if !IsOverridden() {
		assert.Equal(t, Bind(Detected()), ActiveImpl())
	}
}

func TestDetectIsStable(t *testing.T) {
	assert.Equal(t, Detect(), Detect())
	if !runtimeDetection {
		assert.Equal(t, baseline(), Detected())
	}
}

func TestKernelFor(t *testing.T) {
	for _, k := range Kernels() {
		assert.Equal(t, k, KernelFor(k.Impl()))
	}
	assert.Equal(t, Generic, KernelFor(Impl(99)).Impl())
	assert.Len(t, Kernels(), 4)
}
