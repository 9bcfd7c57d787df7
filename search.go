package suffixarray

import (
	"bytes"
	"sort"
)

// compareAt compares the suffix at rank i with pattern over their first
// min(len) bytes. A suffix shorter than pattern that matches it to its end is
// smaller; a suffix that has pattern as a prefix compares equal.
func (s *SuffixArray) compareAt(i int, pattern []byte) int {
	suffix := s.text[s.suffixArray[i]:]
	if len(suffix) > len(pattern) {
		suffix = suffix[:len(pattern)]
	}
	return bytes.Compare(suffix, pattern)
}

func (s *SuffixArray) lowerBound(pattern []byte) int {
	return sort.Search(len(s.suffixArray), func(i int) bool {
		return s.compareAt(i, pattern) >= 0
	})
}

func (s *SuffixArray) upperBound(pattern []byte) int {
	return sort.Search(len(s.suffixArray), func(i int) bool {
		return s.compareAt(i, pattern) > 0
	})
}

// LowerBound returns the first rank whose suffix is not smaller than pattern.
func (s *SuffixArray) LowerBound(pattern []byte) (int, error) {
	if !s.built {
		return 0, ErrNotBuilt
	}
	return s.lowerBound(pattern), nil
}

// UpperBound returns the first rank whose suffix is greater than pattern and
// does not start with it.
func (s *SuffixArray) UpperBound(pattern []byte) (int, error) {
	if !s.built {
		return 0, ErrNotBuilt
	}
	return s.upperBound(pattern), nil
}

// FindOccurrences returns the half-open rank range [l, r) of the suffixes that
// start with pattern. The pattern does not occur iff l == r. The empty pattern
// matches every suffix.
func (s *SuffixArray) FindOccurrences(pattern []byte) (int, int, error) {
	if !s.built {
		return 0, 0, ErrNotBuilt
	}
	l := s.lowerBound(pattern)
	if l == len(s.suffixArray) || s.compareAt(l, pattern) != 0 {
		return l, l, nil
	}
	// Every match sits at or after l, so the upper search can skip [0, l).
	r := l + sort.Search(len(s.suffixArray)-l, func(i int) bool {
		return s.compareAt(l+i, pattern) > 0
	})
	return l, r, nil
}

// Count returns the number of positions where pattern occurs in the text.
func (s *SuffixArray) Count(pattern []byte) (int, error) {
	l, r, err := s.FindOccurrences(pattern)
	if err != nil {
		return 0, err
	}
	return r - l, nil
}

// FirstOccurrence returns the smallest text position where pattern occurs.
// The boolean is false if it does not occur.
func (s *SuffixArray) FirstOccurrence(pattern []byte) (int, bool, error) {
	l, r, err := s.FindOccurrences(pattern)
	if err != nil || l == r {
		return 0, false, err
	}
	if s.posMin != nil {
		return s.posMin.Min(l, r-1), true, nil
	}
	first := s.suffixArray[l]
	for _, p := range s.suffixArray[l+1 : r] {
		first = min(first, p)
	}
	return first, true, nil
}

// Locate returns up to k text positions where pattern occurs, in suffix
// order. A negative k returns all of them.
func (s *SuffixArray) Locate(pattern []byte, k int) ([]int, error) {
	l, r, err := s.FindOccurrences(pattern)
	if err != nil {
		return nil, err
	}
	if k >= 0 && r-l > k {
		r = l + k
	}
	positions := make([]int, r-l)
	copy(positions, s.suffixArray[l:r])
	return positions, nil
}
