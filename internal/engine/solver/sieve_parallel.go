package solver

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"
)

// fillWavefront builds the table in windows of width first. Every index in a window
// depends only on indices below the window start, which are final by then, so
// the words of a window can be computed independently and merged afterwards.
// Workers only read the shared table. Their segments are OR-ed in under a lock once
// the window is done. It returns the number of windows processed.
func fillWavefront(reach *bitset.BitSet, coins []uint64, size uint64, cfg sieveConfig) int {
	first := coins[0]
	words := reach.Words()
	threads := uint64(max(cfg.threads, 1))
	minSpan := max(cfg.minSpan, 1)

	var (
		mu       sync.Mutex
		segments = make([][]uint64, threads)
		windows  int
	)

	merge := func(lo uint64, seg []uint64) {
		mu.Lock()
		defer mu.Unlock()
		for k, w := range seg {
			words[lo+uint64(k)] |= w
		}
	}

	for start := first; start < size; start += first {
		windows++
		end := min(start+first, size) - 1
		lo, hi := start>>6, end>>6
		count := hi - lo + 1

		if end-start+1 < minSpan || count < 2 {
			seg := cfg.pool.get(int(count))
			fillWords(reach, coins, size, lo, seg)
			merge(lo, seg)
			cfg.pool.put(seg)
			continue
		}

		parts := min(threads, count)
		chunk := (count + parts - 1) / parts

		var g errgroup.Group
		g.SetLimit(int(parts))
		for p := range parts {
			from := lo + p*chunk
			to := min(from+chunk, hi+1)
			if from >= to {
				segments[p] = nil
				continue
			}
			g.Go(func() error {
				seg := cfg.pool.get(int(to - from))
				fillWords(reach, coins, size, from, seg)
				segments[p] = seg
				return nil
			})
		}
		_ = g.Wait()

		for p := range parts {
			if seg := segments[p]; seg != nil {
				merge(lo+p*chunk, seg)
				cfg.pool.put(seg)
				segments[p] = nil
			}
		}
	}
	return windows
}

// fillWords computes seg[k] as the reachability word at index (from+k)*64.
func fillWords(reach *bitset.BitSet, coins []uint64, size, from uint64, seg []uint64) {
	for k := range seg {
		base := (from + uint64(k)) << 6
		seg[k] = wordAt(reach, coins, base, size)
	}
}

// wordAt ORs, over all coins, the 64 table bits starting at base-c.
// Positions below zero read as unreachable and bits at or past size are dropped.
func wordAt(reach *bitset.BitSet, coins []uint64, base, size uint64) uint64 {
	var w uint64
	for _, c := range coins {
		switch {
		case base >= c:
			w |= reach.GetWord64AtBit(uint(base - c))
		case c-base < 64:
			w |= reach.GetWord64AtBit(0) << (c - base)
		}
	}
	if base+64 > size {
		w &= (uint64(1) << (size - base)) - 1
	}
	return w
}
