package suffixarray

import (
	"fmt"

	"github.com/dsnet/golib/errs"
)

// byteAlphabet is the alphabet size of a mapped byte text: 256 byte values
// shifted up by one, plus the sentinel 0.
const byteAlphabet = 257

// BuildSuffixArray returns the suffix array of text: the starting positions
// of all suffixes of text in increasing byte order.
func BuildSuffixArray(text []byte) ([]int, error) {
	mapped := make([]int, len(text)+1)
	for i, c := range text {
		mapped[i] = int(c) + 1
	}
	sa, err := SAIS(mapped, byteAlphabet)
	if err != nil {
		return nil, err
	}
	// sa[0] is the suffix made of the sentinel alone.
	return sa[1:], nil
}

// SAIS computes the suffix array of an integer text by induced sorting.
//
// text must end in a sentinel 0 that occurs nowhere else, and every symbol
// must lie in [0, alphabet). The result includes the sentinel's own suffix,
// which is always first.
func SAIS(text []int, alphabet int) (sa []int, err error) {
	defer errs.Recover(&err)
	errs.Assert(len(text) > 0, fmt.Errorf("%w: missing sentinel", ErrInvalidInput))
	errs.Assert(alphabet > 0, fmt.Errorf("%w: empty alphabet", ErrInvalidInput))
	last := len(text) - 1
	errs.Assert(text[last] == 0, fmt.Errorf("%w: text[%d]=%d is not the sentinel 0",
		ErrInvalidInput, last, text[last]))
	for i, c := range text[:last] {
		if c <= 0 || c >= alphabet {
			tracer().Errorf("rejecting text: symbol %d at position %d outside (0,%d)", c, i, alphabet)
			errs.Panic(fmt.Errorf("%w: text[%d]=%d outside (0,%d)", ErrInvalidInput, i, c, alphabet))
		}
	}
	return sais(text, alphabet), nil
}

// sais is the unchecked recursive builder behind SAIS.
func sais(text []int, alphabet int) []int {
	n := len(text)
	sa := make([]int, n)
	if n == 1 {
		return sa
	}

	isL := make([]bool, n)
	lms := classify(text, isL)
	buckets := newBuckets(text, alphabet)

	// First pass sorts LMS substrings, not yet LMS suffixes.
	induce(text, sa, isL, lms, buckets)
	sorted := make([]int, 0, len(lms))
	for _, p := range sa {
		if isLMS(isL, p) {
			sorted = append(sorted, p)
		}
	}

	reduced, names := nameLMS(text, isL, lms, sorted)
	tracer().Debugf("sais level n=%d alphabet=%d lms=%d names=%d", n, alphabet, len(lms), names)

	m := len(lms)
	if names == m {
		// Names are unique, so name order is suffix order already.
		for i, name := range reduced {
			sorted[name] = lms[i]
		}
	} else {
		sub := make([]int, m+1)
		for i, name := range reduced {
			sub[i] = name + 1
		}
		subSA := sais(sub, names+1)
		for i, p := range subSA[1:] {
			sorted[i] = lms[p]
		}
	}

	induce(text, sa, isL, sorted, buckets)
	return sa
}

// classify fills isL with the L/S type of each position of text and returns
// the LMS positions in increasing order. The sentinel is S-type.
func classify(text []int, isL []bool) []int {
	n := len(text)
	var lms []int
	for i := n - 2; i >= 0; i-- {
		isL[i] = text[i] > text[i+1] || (text[i] == text[i+1] && isL[i+1])
		if isL[i] && !isL[i+1] {
			lms = append(lms, i+1)
		}
	}
	for i, j := 0, len(lms)-1; i < j; i, j = i+1, j-1 {
		lms[i], lms[j] = lms[j], lms[i]
	}
	return lms
}

func isLMS(isL []bool, p int) bool {
	return p > 0 && !isL[p] && isL[p-1]
}

// buckets holds the first and one-past-last slot of every symbol's bucket.
type buckets struct {
	head, tail []int
}

func newBuckets(text []int, alphabet int) buckets {
	b := buckets{head: make([]int, alphabet), tail: make([]int, alphabet)}
	for _, c := range text {
		b.tail[c]++
	}
	sum := 0
	for c := range b.tail {
		b.head[c] = sum
		sum += b.tail[c]
		b.tail[c] = sum
	}
	return b
}

// induce places the seed LMS positions, given in their sorted order, at the
// tails of their buckets and induces the order of every other position from
// them: L-type left to right into bucket heads, then S-type right to left
// into bucket tails.
func induce(text, sa []int, isL []bool, seeds []int, b buckets) {
	for i := range sa {
		sa[i] = -1
	}

	tail := make([]int, len(b.tail))
	copy(tail, b.tail)
	for i := len(seeds) - 1; i >= 0; i-- {
		p := seeds[i]
		tail[text[p]]--
		sa[tail[text[p]]] = p
	}

	head := make([]int, len(b.head))
	copy(head, b.head)
	for i := 0; i < len(sa); i++ {
		p := sa[i] - 1
		if p >= 0 && isL[p] {
			sa[head[text[p]]] = p
			head[text[p]]++
		}
	}

	copy(tail, b.tail)
	for i := len(sa) - 1; i >= 0; i-- {
		p := sa[i] - 1
		if p >= 0 && !isL[p] {
			tail[text[p]]--
			sa[tail[text[p]]] = p
		}
	}
}

// nameLMS assigns each LMS substring a name such that equal substrings share
// a name and names follow the order of sorted. It returns the names of lms in
// text order and the number of distinct names.
func nameLMS(text []int, isL []bool, lms, sorted []int) ([]int, int) {
	names := make([]int, len(text))
	for i := range names {
		names[i] = -1
	}
	name := 0
	names[sorted[0]] = name
	for k := 1; k < len(sorted); k++ {
		if !equalLMS(text, isL, sorted[k-1], sorted[k]) {
			name++
		}
		names[sorted[k]] = name
	}

	reduced := make([]int, len(lms))
	for i, p := range lms {
		reduced[i] = names[p]
	}
	return reduced, name + 1
}

// equalLMS reports whether the LMS substrings starting at a and b are equal.
// The scan ends at the first LMS boundary on either side, so the total work
// over one naming pass is linear.
func equalLMS(text []int, isL []bool, a, b int) bool {
	if text[a] != text[b] {
		return false
	}
	for i, j := a+1, b+1; ; i, j = i+1, j+1 {
		endA, endB := isLMS(isL, i), isLMS(isL, j)
		if text[i] != text[j] {
			return false
		}
		if endA || endB {
			return endA && endB
		}
	}
}
