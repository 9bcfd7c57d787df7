package suffixarray

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"slices"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidInput    = errors.New("suffixarray: invalid input")
	ErrIndexOutOfRange = errors.New("suffixarray: index out of range")
	ErrNotBuilt        = errors.New("suffixarray: suffix array not built")
	ErrInvalidUTF8     = errors.New("suffixarray: invalid UTF-8 encoding in input text")
)

type Builder struct {
	rmq       RMQKind
	normalize bool
}

func NewBuilder() *Builder {
	return &Builder{
		rmq:       RMQSparseTable,
		normalize: false,
	}
}

// Skips the range-minimum structure over the LCP array.
// GetLCP then compares the two suffixes directly, O(n) instead of O(1),
// and FirstOccurrence scans the whole match range.
// Saves O(n log n) memory for the sparse table.
func (b *Builder) SkipRMQ() *Builder {
	b.rmq = RMQNone
	return b
}

// Uses the hybrid block RMQ instead of the sparse table.
// Linear memory, at a somewhat slower query.
func (b *Builder) UseHybridRMQ() *Builder {
	b.rmq = RMQHybrid
	return b
}

// Normalizes the text with NFC before indexing.
// The text must be valid UTF-8 and all positions refer to the normalized text.
func (b *Builder) Normalize() *Builder {
	b.normalize = true
	return b
}

// New returns an unbuilt SuffixArray carrying the builder's options.
func (b *Builder) New() *SuffixArray {
	return &SuffixArray{rmqKind: b.rmq, normalize: b.normalize}
}

func (b *Builder) Build(text []byte) (*SuffixArray, error) {
	s := b.New()
	if err := s.Build(text); err != nil {
		return nil, err
	}
	return s, nil
}

// SuffixArray is a suffix array over a byte text together with its rank
// and LCP arrays. The zero value is an unbuilt suffix array without a
// range-minimum structure.
type SuffixArray struct {
	rmqKind   RMQKind
	normalize bool

	built       bool
	text        []byte
	suffixArray []int
	rank        []int
	lcp         []int
	lcpMin      rangeMin
	posMin      *positionMin
}

// Build indexes text, replacing whatever the suffix array held before.
// On error the suffix array is left unbuilt.
func (s *SuffixArray) Build(text []byte) error {
	s.reset()

	if s.normalize {
		if !utf8.Valid(text) {
			tracer().Errorf("rejecting text of length %d: invalid UTF-8", len(text))
			return ErrInvalidUTF8
		}
		text = norm.NFC.Bytes(text)
	}
	text = bytes.Clone(text)
	if text == nil {
		text = []byte{}
	}

	suffixArray, err := BuildSuffixArray(text)
	if err != nil {
		return err
	}
	rank := BuildRankArray(suffixArray)
	lcp := BuildLCPArray(suffixArray, rank, text)

	s.text = text
	s.suffixArray = suffixArray
	s.rank = rank
	s.lcp = lcp
	s.lcpMin = newRangeMin(s.rmqKind, lcp)
	if s.rmqKind != RMQNone {
		s.posMin = newPositionMin(suffixArray)
	}
	s.built = true

	tracer().Infof("suffix array built n=%d rmq=%s", len(text), s.rmqKind)
	return nil
}

func (s *SuffixArray) reset() {
	s.built = false
	s.text = nil
	s.suffixArray = nil
	s.rank = nil
	s.lcp = nil
	s.lcpMin = nil
	s.posMin = nil
}

// Built reports whether Build completed successfully.
func (s *SuffixArray) Built() bool {
	return s.built
}

// Len returns the length of the indexed text.
func (s *SuffixArray) Len() (int, error) {
	if !s.built {
		return 0, ErrNotBuilt
	}
	return len(s.text), nil
}

// Text returns a copy of the indexed text.
func (s *SuffixArray) Text() ([]byte, error) {
	if !s.built {
		return nil, ErrNotBuilt
	}
	return bytes.Clone(s.text), nil
}

// Suffixes returns a copy of the suffix array: text positions in increasing
// order of the suffixes starting there.
func (s *SuffixArray) Suffixes() ([]int, error) {
	if !s.built {
		return nil, ErrNotBuilt
	}
	return slices.Clone(s.suffixArray), nil
}

// Ranks returns a copy of the inverse suffix array.
func (s *SuffixArray) Ranks() ([]int, error) {
	if !s.built {
		return nil, ErrNotBuilt
	}
	return slices.Clone(s.rank), nil
}

// LCP returns a copy of the LCP array, of length max(n-1, 0).
func (s *SuffixArray) LCP() ([]int, error) {
	if !s.built {
		return nil, ErrNotBuilt
	}
	return slices.Clone(s.lcp), nil
}

// RangeMinLCP returns min(lcp[l..r]). For l > r no pair of adjacent suffixes
// is covered and the result is math.MaxInt; callers have to guard that case.
func (s *SuffixArray) RangeMinLCP(l, r int) (int, error) {
	if !s.built {
		return 0, ErrNotBuilt
	}
	if l > r {
		return math.MaxInt, nil
	}
	if l < 0 || r >= len(s.lcp) {
		return 0, fmt.Errorf("%w: lcp range [%d,%d] with %d entries", ErrIndexOutOfRange, l, r, len(s.lcp))
	}
	return s.rangeMinLCP(l, r), nil
}

func (s *SuffixArray) rangeMinLCP(l, r int) int {
	if s.lcpMin != nil {
		return s.lcpMin.Min(l, r)
	}
	if l > r {
		return math.MaxInt
	}
	return slices.Min(s.lcp[l : r+1])
}

// GetLCP returns the length of the longest common prefix of the suffixes
// starting at text positions i and j.
func (s *SuffixArray) GetLCP(i, j int) (int, error) {
	if !s.built {
		return 0, ErrNotBuilt
	}
	n := len(s.text)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("%w: positions %d, %d with text length %d", ErrIndexOutOfRange, i, j, n)
	}
	if i == j {
		return n - i, nil
	}
	if s.lcpMin == nil {
		return matchLen(s.text[i:], s.text[j:]), nil
	}
	ri, rj := s.rank[i], s.rank[j]
	if ri > rj {
		ri, rj = rj, ri
	}
	return s.lcpMin.Min(ri, rj-1), nil
}

// matchLen returns the length of the common prefix of p and q.
func matchLen(p, q []byte) int {
	n := min(len(p), len(q))
	for i := 0; i < n; i++ {
		if p[i] != q[i] {
			return i
		}
	}
	return n
}
