package suffixarray

import (
	"bytes"
	"math/rand"
	"slices"
	"testing"
)

func naiveOccurrences(text, pattern []byte) []int {
	var res []int
	for i := 0; i < len(text) && i+len(pattern) <= len(text); i++ {
		if bytes.HasPrefix(text[i:], pattern) {
			res = append(res, i)
		}
	}
	return res
}

func checkOccurrences(t *testing.T, s *SuffixArray, text, pattern []byte) {
	t.Helper()
	expected := naiveOccurrences(text, pattern)

	l, r, err := s.FindOccurrences(pattern)
	if err != nil {
		t.Fatal(err)
	}
	if r-l != len(expected) {
		t.Fatalf("%q in %q: range [%d,%d), want %d matches", pattern, text, l, r, len(expected))
	}

	got, err := s.Locate(pattern, -1)
	if err != nil {
		t.Fatal(err)
	}
	slices.Sort(got)
	if !slices.Equal(got, expected) {
		t.Fatalf("%q in %q: located %v, want %v", pattern, text, got, expected)
	}

	first, ok, err := s.FirstOccurrence(pattern)
	if err != nil {
		t.Fatal(err)
	}
	if ok != (len(expected) > 0) || (ok && first != expected[0]) {
		t.Fatalf("%q in %q: first occurrence %d, %v; want %v", pattern, text, first, ok, expected)
	}
}

func TestFindOccurrencesBanana(t *testing.T) {
	for name, newBuilder := range builders {
		t.Run(name, func(t *testing.T) {
			s := mustBuild(t, newBuilder(), "banana")
			tests := []struct {
				pattern string
				l, r    int
			}{
				{"ana", 1, 3},
				{"a", 0, 3},
				{"na", 4, 6},
				{"banana", 3, 4},
				{"", 0, 6},
				{"bananas", 4, 4},
				{"nab", 5, 5},
				{"b", 3, 4},
				{"c", 4, 4},
				{"0", 0, 0},
			}
			for _, tc := range tests {
				l, r, err := s.FindOccurrences([]byte(tc.pattern))
				if err != nil {
					t.Fatal(err)
				}
				if l != tc.l || r != tc.r {
					t.Errorf("FindOccurrences(%q)=[%d,%d), want [%d,%d)", tc.pattern, l, r, tc.l, tc.r)
				}
				checkOccurrences(t, s, []byte("banana"), []byte(tc.pattern))
			}
		})
	}
}

func TestBounds(t *testing.T) {
	s := mustBuild(t, NewBuilder(), "banana")
	tests := []struct {
		pattern      string
		lower, upper int
	}{
		{"ana", 1, 3},
		{"an", 1, 3},
		{"anb", 3, 3},
		{"anaa", 2, 2},
		{"", 0, 6},
		{"z", 6, 6},
	}
	for _, tc := range tests {
		lower, err := s.LowerBound([]byte(tc.pattern))
		if err != nil {
			t.Fatal(err)
		}
		upper, err := s.UpperBound([]byte(tc.pattern))
		if err != nil {
			t.Fatal(err)
		}
		if lower != tc.lower || upper != tc.upper {
			t.Errorf("%q: bounds [%d,%d), want [%d,%d)", tc.pattern, lower, upper, tc.lower, tc.upper)
		}
	}
}

func TestFindOccurrencesRandom(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for name, newBuilder := range builders {
		t.Run(name, func(t *testing.T) {
			for iter := 0; iter < 50; iter++ {
				text := randomText(r, r.Intn(200), 1+r.Intn(3))
				s, err := newBuilder().Build(text)
				if err != nil {
					t.Fatal(err)
				}
				for k := 0; k < 30; k++ {
					var pattern []byte
					if len(text) > 0 && r.Intn(2) == 0 {
						start := r.Intn(len(text))
						end := start + r.Intn(len(text)-start+1)
						pattern = text[start:end]
					} else {
						pattern = randomText(r, r.Intn(5), 3)
					}
					checkOccurrences(t, s, text, pattern)
				}
				longer := append(bytes.Clone(text), 'a')
				checkOccurrences(t, s, text, longer)
			}
		})
	}
}

func TestCount(t *testing.T) {
	s := mustBuild(t, NewBuilder(), "abracadabra")
	tests := map[string]int{
		"abra": 2,
		"a":    5,
		"cad":  1,
		"":     11,
		"abrr": 0,
	}
	for pattern, want := range tests {
		got, err := s.Count([]byte(pattern))
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Count(%q)=%d, want %d", pattern, got, want)
		}
	}
}

func TestLocateLimit(t *testing.T) {
	s := mustBuild(t, NewBuilder(), "aaaaaa")
	for _, k := range []int{0, 1, 3, 5, 10} {
		got, err := s.Locate([]byte("aa"), k)
		if err != nil {
			t.Fatal(err)
		}
		if want := min(k, 5); len(got) != want {
			t.Errorf("Locate(aa, %d) returned %d positions, want %d", k, len(got), want)
		}
	}
	// Suffix order: shorter runs of a sort first.
	got, _ := s.Locate([]byte("aa"), 2)
	if !slices.Equal(got, []int{4, 3}) {
		t.Errorf("Locate(aa, 2)=%v, want [4 3]", got)
	}
}

func FuzzFindOccurrences(f *testing.F) {
	f.Add([]byte("banana"), []byte("ana"))
	f.Add([]byte("mississippi"), []byte("ssi"))
	f.Add([]byte(""), []byte(""))
	f.Add([]byte("aaaa"), []byte("aaaaa"))

	f.Fuzz(func(t *testing.T, text, pattern []byte) {
		if len(text) > 1000 || len(pattern) > 100 {
			return
		}
		s, err := NewBuilder().Build(text)
		if err != nil {
			t.Fatal(err)
		}
		checkOccurrences(t, s, text, pattern)
	})
}
