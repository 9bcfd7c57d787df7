// Command sa reads one whitespace-delimited token from standard input and
// prints its suffix array, one position per line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/viniciusth/suffixarray"
)

func main() {
	printLCP := flag.Bool("lcp", false, "Also print the LCP array after a blank line")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, *printLCP); err != nil {
		fmt.Fprintf(os.Stderr, "sa: %v\n", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, printLCP bool) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), 1<<30)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		return sc.Err()
	}

	sa, err := suffixarray.NewBuilder().Build(sc.Bytes())
	if err != nil {
		return err
	}
	suffixes, err := sa.Suffixes()
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	for _, p := range suffixes {
		w.WriteString(strconv.Itoa(p))
		w.WriteByte('\n')
	}
	if printLCP {
		lcp, err := sa.LCP()
		if err != nil {
			return err
		}
		w.WriteByte('\n')
		for _, l := range lcp {
			w.WriteString(strconv.Itoa(l))
			w.WriteByte('\n')
		}
	}
	return w.Flush()
}
