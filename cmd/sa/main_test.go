package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lcp   bool
		want  string
	}{
		{"banana", "banana\n", false, "5\n3\n1\n0\n4\n2\n"},
		{"first token only", "  aaaa bbb\n", true, "3\n2\n1\n0\n\n1\n2\n3\n"},
		{"no token", "   \n", false, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(strings.NewReader(tc.input), &out, tc.lcp); err != nil {
				t.Fatal(err)
			}
			if out.String() != tc.want {
				t.Errorf("got %q, want %q", out.String(), tc.want)
			}
		})
	}
}
