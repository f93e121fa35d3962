package partition

import (
	"errors"

	"github.com/katalvlaran/evoclust/core"
	"github.com/katalvlaran/evoclust/rng"
)

// ErrDegenerateK is returned when k < 1.
var ErrDegenerateK = errors.New("partition: k must be >= 1")

// BisectionPartitioner implements KWayPartitioner via repeated min-cut
// bisection: the node set is split in two (Bisect), and the larger part
// is recursively bisected until k parts exist.
type BisectionPartitioner struct{}

// NewBisectionPartitioner returns the default KWayPartitioner.
func NewBisectionPartitioner() *BisectionPartitioner { return &BisectionPartitioner{} }

// Partition implements KWayPartitioner.
func (BisectionPartitioner) Partition(g *core.Graph, k int, epsilon float64, r *rng.Source) ([]int32, error) {
	if k < 1 {
		return nil, ErrDegenerateK
	}
	result := make([]int32, g.N)
	if k == 1 || g.N <= 1 {
		return result, nil
	}

	all := make([]int32, g.N)
	for i := range all {
		all[i] = int32(i)
	}

	parts := [][]int32{all}
	for len(parts) < k {
		// Find and split the largest part; stop early if every part is a
		// singleton (cannot split further).
		biggest := 0
		for i, p := range parts {
			if len(p) > len(parts[biggest]) {
				biggest = i
			}
		}
		if len(parts[biggest]) <= 1 {
			break
		}
		left, right := Bisect(g, parts[biggest], epsilon, r)
		parts[biggest] = left
		parts = append(parts, right)
	}

	for id, p := range parts {
		for _, v := range p {
			result[v] = int32(id)
		}
	}
	return result, nil
}
