package partition

import (
	"golang.org/x/sync/errgroup"
)

// bestCandidate picks the next vertex to join members.
//
// Small pools, or Workers == 1, use the sequential scan. Otherwise the pool is
// cut into Workers contiguous chunks; each chunk reports its own first-best and
// the chunk winners are reduced left to right with a strict ">" so the result
// equals the sequential scan. Workers only read shared state.
func (b *builder) bestCandidate(members, pool []int) (int, int64, error) {
	if b.o.Workers <= 1 || len(pool) < b.o.ParallelThreshold {
		best, score := b.scanRange(members, pool)
		return best, score, nil
	}

	var (
		chunks = b.o.Workers
		size   = (len(pool) + chunks - 1) / chunks
		bests  = make([]int, chunks)
		scores = make([]int64, chunks)
		eg     errgroup.Group
	)
	for c := 0; c < chunks; c++ {
		c := c
		lo := c * size
		if lo >= len(pool) {
			bests[c] = -1
			continue
		}
		hi := min(lo+size, len(pool))
		eg.Go(func() error {
			bests[c], scores[c] = b.scanRange(members, pool[lo:hi])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return -1, 0, err
	}

	var (
		best      = -1
		bestScore int64
	)
	for c := 0; c < chunks; c++ {
		if bests[c] < 0 {
			continue
		}
		if best < 0 || scores[c] > bestScore {
			best, bestScore = bests[c], scores[c]
		}
	}

	return best, bestScore, nil
}
