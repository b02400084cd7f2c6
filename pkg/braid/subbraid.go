package braid

import "fmt"

// Sub projects the word onto a subset of strands, identified by their
// initial (leftmost) positions. A crossing survives the projection exactly
// when both strands involved belong to the subset; its generator index is
// renumbered to the crossing's position among the kept strands.
//
// The second return value lists, in order, the indices into the original
// generator sequence of the crossings that survived. Time-stamped braids use
// it to carry over the matching crossing times.
func (w Word) Sub(strands []int) (Word, []int, error) {
	n := w.Strands()
	if len(strands) == 0 {
		return Word{}, nil, fmt.Errorf("%w: empty selection", ErrStrandSubset)
	}
	keep := make(map[int]bool, len(strands))
	for _, s := range strands {
		if s < 1 || s > n {
			return Word{}, nil, fmt.Errorf("%w: strand %d of %d", ErrStrandSubset, s, n)
		}
		if keep[s] {
			return Word{}, nil, fmt.Errorf("%w: strand %d selected twice", ErrStrandSubset, s)
		}
		keep[s] = true
	}

	// Walk the word tracking which initial strand occupies each position.
	perm := make([]int, n+1) // 1-based positions
	for k := 1; k <= n; k++ {
		perm[k] = k
	}

	var gens []int
	var kept []int
	for j, g := range w.gens {
		i := g
		sign := 1
		if i < 0 {
			i, sign = -i, -1
		}
		if keep[perm[i]] && keep[perm[i+1]] {
			// Position of the crossing among kept strands.
			idx := 0
			for k := 1; k <= i; k++ {
				if keep[perm[k]] {
					idx++
				}
			}
			gens = append(gens, sign*idx)
			kept = append(kept, j)
		}
		perm[i], perm[i+1] = perm[i+1], perm[i]
	}

	sub, err := New(len(strands), gens...)
	if err != nil {
		return Word{}, nil, err
	}
	return sub, kept, nil
}
