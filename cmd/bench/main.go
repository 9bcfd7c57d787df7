package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/viniciusth/suffixarray"
)

type variant struct {
	name   string
	config func(*suffixarray.Builder) *suffixarray.Builder
}

var variants = map[string]variant{
	"full":   {name: "full", config: func(b *suffixarray.Builder) *suffixarray.Builder { return b }},
	"no_rmq": {name: "no_rmq", config: func(b *suffixarray.Builder) *suffixarray.Builder { return b.SkipRMQ() }},
	"hybrid": {name: "hybrid", config: func(b *suffixarray.Builder) *suffixarray.Builder { return b.UseHybridRMQ() }},
}

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
	done     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{}), done: make(chan struct{})}
	go func() {
		defer close(mm.done)
		for {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			if m.Alloc > mm.maxAlloc {
				mm.maxAlloc = m.Alloc
			}
			select {
			case <-mm.stop:
				return
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
	return mm
}

func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	<-mm.done
	return mm.maxAlloc
}

func getCurrentAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func measureBuild(text []byte, config func(*suffixarray.Builder) *suffixarray.Builder) (time.Duration, uint64, uint64, *suffixarray.SuffixArray) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	sa, err := config(suffixarray.NewBuilder()).Build(text)
	if err != nil {
		panic(err)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc, sa
}

type query struct {
	pattern []byte
	i, j    int
}

func measureQuery(sa *suffixarray.SuffixArray, queries []query) (time.Duration, uint64, uint64) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	for _, q := range queries {
		if _, _, err := sa.FindOccurrences(q.pattern); err != nil {
			panic(err)
		}
		if _, err := sa.GetLCP(q.i, q.j); err != nil {
			panic(err)
		}
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc
}

func runBenchmark(v variant, N, sigma, P, Q, runs int) {
	for run := 0; run < runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		text := make([]byte, N)
		for i := range text {
			text[i] = byte(r.Intn(sigma) + 'a')
		}
		bt, bp, ba, sa := measureBuild(text, v.config)

		queries := make([]query, Q)
		for i := range queries {
			start := r.Intn(N - P + 1)
			queries[i] = query{
				pattern: text[start : start+P],
				i:       r.Intn(N),
				j:       r.Intn(N),
			}
		}
		qt, qp, qa := measureQuery(sa, queries)
		fmt.Printf("%s,%d,%d,%d,%d,%.0f,%d,%d,%.0f,%d,%d\n",
			v.name, N, sigma, P, Q,
			float64(bt.Nanoseconds()), bp, ba,
			float64(qt.Nanoseconds()), qp, qa)
	}
}

func main() {
	variantName := flag.String("variant", "", "Variant to benchmark")
	n := flag.Int("n", 0, "Text length N")
	sigma := flag.Int("sigma", 4, "Alphabet size, at most 26")
	p := flag.Int("p", 0, "Pattern length P")
	q := flag.Int("q", 0, "Number of queries Q")
	runs := flag.Int("runs", 3, "Number of runs for averaging")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *variantName == "" || *n <= 0 || *p <= 0 || *q <= 0 || *p > *n || *sigma <= 0 || *sigma > 26 {
		fmt.Println("Usage: go run main.go -variant=<variant> -n=<N> -p=<P> -q=<Q> [-sigma=<sigma>] [-runs=<runs>]")
		fmt.Println("Available variants: full, no_rmq, hybrid")
		os.Exit(1)
	}

	v, ok := variants[*variantName]
	if !ok {
		fmt.Println("Invalid variant:", *variantName)
		os.Exit(1)
	}

	runBenchmark(v, *n, *sigma, *p, *q, *runs)
}
