package suffixarray

// BuildRankArray returns the inverse of suffixArray: rank[suffixArray[i]] = i.
func BuildRankArray(suffixArray []int) []int {
	rank := make([]int, len(suffixArray))
	for i, p := range suffixArray {
		rank[p] = i
	}
	return rank
}

// Kasai's algorithm for building the LCP array in O(n) time.
// lcp[i] is the length of the common prefix of the suffixes at ranks i and i+1.
func BuildLCPArray(suffixArray, rank []int, text []byte) []int {
	n := len(suffixArray)
	if n == 0 {
		return []int{}
	}

	lcp := make([]int, n-1)
	l := 0
	for i := 0; i < n; i++ {
		r := rank[i]
		if r+1 == n {
			l = 0
			continue
		}
		// l only drops by one per step, which bounds the whole pass to O(n).
		j := suffixArray[r+1]
		for i+l < n && j+l < n && text[i+l] == text[j+l] {
			l++
		}
		lcp[r] = l
		if l > 0 {
			l--
		}
	}

	return lcp
}
