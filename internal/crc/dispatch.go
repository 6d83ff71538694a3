package crc

// Kernel is one implementation tier. Its Update and UpdateCopy form the
// dispatch entry; the fold methods drive an incremental session.
//
// UpdateCopy and FoldCopy panic if dst is shorter than src. Overlapping dst
// and src are only allowed when they are the same range.
type Kernel interface {
	Impl() Impl
	Update(crc uint32, p []byte) uint32
	UpdateCopy(crc uint32, dst, src []byte) uint32
	FoldReset(s *FoldState)
	Fold(s *FoldState, p []byte, initCRC uint32)
	FoldCopy(s *FoldState, dst, src []byte)
	FoldFinal(s *FoldState) uint32
}

// tableKernel adapts a whole-buffer update routine to the Kernel interface.
// Its fold session is a running CRC value.
type tableKernel struct {
	impl       Impl
	update     func(crc uint32, p []byte) uint32
	updateCopy func(crc uint32, dst, src []byte) uint32
}

var (
	genericKernel = &tableKernel{impl: Generic, update: updateGeneric, updateCopy: updateCopyGeneric}
	scalarKernel  = &tableKernel{impl: CRC32, update: updateScalar, updateCopy: updateCopyScalar}
)

func (k *tableKernel) Impl() Impl { return k.impl }

func (k *tableKernel) Update(crc uint32, p []byte) uint32 {
	return k.update(crc, p)
}

func (k *tableKernel) UpdateCopy(crc uint32, dst, src []byte) uint32 {
	return k.updateCopy(crc, dst, src)
}

func (k *tableKernel) FoldReset(s *FoldState) {
	*s = FoldState{}
}

func (k *tableKernel) Fold(s *FoldState, p []byte, initCRC uint32) {
	if !s.started {
		s.value = initCRC
		s.started = true
	}
	s.value = k.update(s.value, p)
}

func (k *tableKernel) FoldCopy(s *FoldState, dst, src []byte) {
	s.started = true
	s.value = k.updateCopy(s.value, dst, src)
}

func (k *tableKernel) FoldFinal(s *FoldState) uint32 {
	return s.value
}

// KernelFor returns the kernel of impl. Every kernel runs on every CPU;
// features only decide which one Bind selects. Unknown values map to Generic.
func KernelFor(impl Impl) Kernel {
	switch impl {
	case CRC32:
		return scalarKernel
	case PCLMUL:
		return fold128
	case VPCLMUL:
		return fold512
	default:
		return genericKernel
	}
}

// Kernels returns the kernel of every tier in preference order, regardless of
// CPU support.
func Kernels() []Kernel {
	ks := make([]Kernel, 0, len(preference))
	for _, impl := range preference {
		ks = append(ks, KernelFor(impl))
	}
	return ks
}

// Table is an immutable binding of features to one kernel. The package-level
// binding made at init is the process-wide table; tests and callers that need
// forced features build their own.
type Table struct {
	features Features
	kernel   Kernel
}

// NewTable binds the fastest kernel supported by f.
func NewTable(f Features) *Table {
	return &Table{features: f, kernel: KernelFor(Bind(f))}
}

// Features returns the features the table was bound from.
func (t *Table) Features() Features { return t.features }

// Kernel returns the bound kernel.
func (t *Table) Kernel() Kernel { return t.kernel }

// Impl returns the bound tier.
func (t *Table) Impl() Impl { return t.kernel.Impl() }

// NewTableFor binds impl. It reports false when f cannot run impl.
func NewTableFor(f Features, impl Impl) (*Table, bool) {
	if !Supports(impl, f) {
		return nil, false
	}
	return &Table{features: f, kernel: KernelFor(impl)}, true
}
