package crc

const (
	// minFoldLen is the shortest input worth folding; shorter inputs go
	// straight to the scalar tier.
	minFoldLen = 16

	maxLanes = 4
	maxWidth = 4 // 128-bit chunks per lane
	maxBlock = maxLanes * maxWidth * 16

	// foldStride bounds the span copied ahead of folding in FoldCopy.
	foldStride = 16 << 10
)

// FoldState is the state of an incremental fold session. The zero value is
// a freshly reset session. It holds no pointers and is safe to copy, but one
// session must only be driven by the kernel that reset it.
type FoldState struct {
	chunks  [maxLanes * maxWidth]u128
	pending [maxBlock]byte
	npend   int

	seed    uint32 // caller-visible CRC the session starts from
	value   uint32 // running CRC of the scalar tiers
	started bool   // seed fixed by the first Fold/FoldCopy
	loaded  bool   // chunks hold the first block
}

// Len reports how many bytes are buffered and not yet folded into lanes.
func (s *FoldState) Len() int {
	return s.npend
}

// foldEngine folds lanes lanes of width 128-bit chunks each. One block is
// lanes*width*16 bytes; chunk i*width+j of the state holds sub-chunk j of
// lane i.
type foldEngine struct {
	impl  Impl
	lanes int
	width int
}

var (
	fold128 = &foldEngine{impl: PCLMUL, lanes: 4, width: 1}
	fold512 = &foldEngine{impl: VPCLMUL, lanes: 4, width: 4}
)

func (e *foldEngine) blockSize() int {
	return e.lanes * e.width * 16
}

func (e *foldEngine) Impl() Impl { return e.impl }

func (e *foldEngine) Update(crc uint32, p []byte) uint32 {
	if len(p) < minFoldLen {
		return updateScalar(crc, p)
	}
	var s FoldState
	e.fold(&s, nil, p, crc)
	return e.FoldFinal(&s)
}

func (e *foldEngine) UpdateCopy(crc uint32, dst, src []byte) uint32 {
	mustFit(dst, src)
	if len(src) < minFoldLen {
		return updateCopyScalar(crc, dst, src)
	}
	var s FoldState
	e.fold(&s, dst, src, crc)
	return e.FoldFinal(&s)
}

func (e *foldEngine) FoldReset(s *FoldState) {
	*s = FoldState{}
}

func (e *foldEngine) Fold(s *FoldState, p []byte, initCRC uint32) {
	e.fold(s, nil, p, initCRC)
}

func (e *foldEngine) FoldCopy(s *FoldState, dst, src []byte) {
	mustFit(dst, src)
	e.fold(s, dst, src, 0)
}

// fold feeds src into the lanes block by block, copying each block to dst
// (when non-nil) as it is consumed. A partial block waits in s.pending.
func (e *foldEngine) fold(s *FoldState, dst, src []byte, initCRC uint32) {
	if !s.started {
		s.seed = initCRC
		s.started = true
	}
	block := e.blockSize()

	if s.npend > 0 {
		n := copy(s.pending[s.npend:block], src)
		if dst != nil {
			copy(dst, src[:n])
			dst = dst[n:]
		}
		s.npend += n
		src = src[n:]
		if s.npend < block {
			return
		}
		e.consume(s, s.pending[:block])
		s.npend = 0
	}

	for len(src) >= block {
		n := min(len(src)/block*block, foldStride)
		if dst != nil {
			copy(dst[:n], src[:n])
			dst = dst[n:]
		}
		e.consume(s, src[:n])
		src = src[n:]
	}

	if len(src) > 0 {
		s.npend = copy(s.pending[:], src)
		if dst != nil {
			copy(dst, src)
		}
	}
}

// consume folds whole blocks. The first block only loads the lanes, with
// the inverted seed mixed into the first four bytes.
func (e *foldEngine) consume(s *FoldState, p []byte) {
	n := e.lanes * e.width
	if !s.loaded {
		for i := 0; i < n; i++ {
			s.chunks[i] = load128(p[i*16:])
		}
		s.chunks[0].lo ^= uint64(^s.seed)
		s.loaded = true
		p = p[n*16:]
	}
	if len(p) > 0 {
		foldBlocks(&s.chunks, n, p)
	}
}

// collapse folds every lane into the last one and then every sub-chunk of
// that lane into its last chunk. Each source is advanced by its own distance
// to the target, so the multiplications are independent of each other.
func (e *foldEngine) collapse(chunks *[maxLanes * maxWidth]u128) u128 {
	w := e.width
	last := (e.lanes - 1) * w

	var acc [maxWidth]u128
	copy(acc[:w], chunks[last:last+w])
	for i := 0; i < e.lanes-1; i++ {
		k := &shift[(e.lanes-1-i)*w]
		for j := 0; j < w; j++ {
			acc[j] = acc[j].xor(k.fold(chunks[i*w+j]))
		}
	}

	v := acc[w-1]
	for j := 0; j < w-1; j++ {
		v = v.xor(shift[w-1-j].fold(acc[j]))
	}
	return v
}

// FoldFinal returns the CRC of everything folded so far. It leaves s
// untouched, so the session may be continued afterwards.
func (e *foldEngine) FoldFinal(s *FoldState) uint32 {
	tail := s.pending[:s.npend]

	var acc u128
	if s.loaded {
		acc = e.collapse(&s.chunks)
	} else {
		if len(tail) < minFoldLen {
			return updateScalar(s.seed, tail)
		}
		acc = load128(tail)
		acc.lo ^= uint64(^s.seed)
		tail = tail[16:]
	}

	k := &shift[1]
	for len(tail) >= 16 {
		acc = k.fold(acc).xor(load128(tail))
		tail = tail[16:]
	}
	return updateScalar(^reduce128(acc), tail)
}
