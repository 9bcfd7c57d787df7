package suffixarray

import (
	"math"

	"github.com/viniciusth/rmq"
)

// rangeMin answers minimum queries over a fixed slice of values.
// Min(l, r) covers values[l..r] inclusive and returns math.MaxInt if l > r.
type rangeMin interface {
	Min(l, r int) int
}

// RMQKind selects the range-minimum structure built over the LCP array.
type RMQKind int

const (
	// The LCP array gets no range-minimum structure.
	RMQNone RMQKind = iota
	// Sparse table: O(n log n) memory, O(1) query.
	RMQSparseTable
	// Hybrid block RMQ from github.com/viniciusth/rmq: O(n) memory.
	RMQHybrid
)

func (k RMQKind) String() string {
	switch k {
	case RMQNone:
		return "none"
	case RMQSparseTable:
		return "sparse"
	case RMQHybrid:
		return "hybrid"
	}
	return "unknown"
}

func newRangeMin(kind RMQKind, values []int) rangeMin {
	if len(values) == 0 {
		return nil
	}
	switch kind {
	case RMQSparseTable:
		return newSparseTable(values)
	case RMQHybrid:
		return newHybridMin(values)
	}
	return nil
}

// sparseTable stores table[k][i] = min(values[i : i+2^k]).
type sparseTable struct {
	table [][]int
	log   []int // log[x] = floor(log2(x))
}

func newSparseTable(values []int) *sparseTable {
	m := len(values)
	log := make([]int, m+1)
	for i := 2; i <= m; i++ {
		log[i] = log[i>>1] + 1
	}

	table := make([][]int, log[m]+1)
	table[0] = values
	for k := 1; k < len(table); k++ {
		half := 1 << (k - 1)
		row := make([]int, m-(1<<k)+1)
		prev := table[k-1]
		for i := range row {
			row[i] = min(prev[i], prev[i+half])
		}
		table[k] = row
	}
	return &sparseTable{table: table, log: log}
}

func (t *sparseTable) Min(l, r int) int {
	if l > r {
		return math.MaxInt
	}
	k := t.log[r-l+1]
	return min(t.table[k][l], t.table[k][r-(1<<k)+1])
}

// hybridMin adapts rmq.RMQHybridNaive, which answers with the index of the
// minimum, to rangeMin.
type hybridMin struct {
	values []int
	rmq    *rmq.RMQHybridNaive[int]
}

func newHybridMin(values []int) *hybridMin {
	return &hybridMin{values: values, rmq: rmq.NewRMQHybridNaive(values)}
}

func (h *hybridMin) Min(l, r int) int {
	if l > r {
		return math.MaxInt
	}
	return h.values[h.rmq.Query(l, r)]
}

// positionMin finds the smallest text position within a rank range of the
// suffix array.
type positionMin struct {
	sa  []int
	rmq *rmq.RMQHybridNaive[int]
}

func newPositionMin(sa []int) *positionMin {
	if len(sa) == 0 {
		return nil
	}
	return &positionMin{sa: sa, rmq: rmq.NewRMQHybridNaive(sa)}
}

// Min returns the smallest of sa[l..r], l <= r.
func (p *positionMin) Min(l, r int) int {
	return p.sa[p.rmq.Query(l, r)]
}
