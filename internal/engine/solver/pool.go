package solver

import "sync"

// segmentPool recycles word buffers for sieves and worker segments so repeated
// solves do not allocate a fresh table each time.
type segmentPool struct {
	p sync.Pool
}

func newSegmentPool() *segmentPool {
	return &segmentPool{
		p: sync.Pool{
			New: func() any {
				s := make([]uint64, 0, 64)
				return &s
			},
		},
	}
}

// get returns a zeroed slice of n words.
func (sp *segmentPool) get(n int) []uint64 {
	ptr, _ := sp.p.Get().(*[]uint64)
	if ptr == nil || cap(*ptr) < n {
		return make([]uint64, n)
	}
	s := (*ptr)[:n]
	clear(s)
	return s
}

func (sp *segmentPool) put(s []uint64) {
	s = s[:0]
	sp.p.Put(&s)
}
