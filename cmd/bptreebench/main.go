// Command bptreebench sweeps bptree.Tree across a range of degrees at one
// scale (the number of keys set by -scale), recording latency and memory
// like the teacher's thesis harness did for its three index
// implementations, and, when -pebble-dir is set, compares the in-memory
// tree against a disk-backed pebble store.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kvindex/bptree/internal/compare"
	"github.com/kvindex/bptree/internal/report"
)

func main() {
	var (
		degreesFlag = flag.String("degrees", "8,32,128", "comma-separated list of bptree degrees to sweep")
		scale       = flag.Int("scale", 1_000_000, "number of keys inserted per configuration")
		csvPath     = flag.String("csv", "bptreebench_results.csv", "CSV output path")
		chartPath   = flag.String("chart", "", "if set, render a latency-vs-degree PNG to this path")
		metricsAddr = flag.String("metrics-addr", "", "if set, serve Prometheus metrics on this address during the sweep")
		pebbleDir   = flag.String("pebble-dir", "", "if set, also benchmark a pebble-backed comparison index rooted at this directory")
		sentryDSN   = flag.String("sentry-dsn", "", "Sentry DSN for panic/structural-error reporting (optional)")
	)
	flag.Parse()

	if err := report.InitSentry(*sentryDSN); err != nil {
		log.Fatalf("bptreebench: sentry init: %v", err)
	}
	defer report.Flush(2 * time.Second)
	defer report.CapturePanic()

	degrees, err := parseDegrees(*degreesFlag)
	if err != nil {
		log.Fatalf("bptreebench: %v", err)
	}

	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr)
	}

	f, err := os.Create(*csvPath)
	if err != nil {
		log.Fatalf("bptreebench: create csv: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write([]string{"Structure", "Config", "TestType", "LatencyNs", "MemMB", "HeapObjects"})

	var chartPoints []degreePoint
	for _, d := range degrees {
		idx, err := compare.NewTreeIndex(d)
		if err != nil {
			log.Fatalf("bptreebench: new bptree index degree=%d: %v", d, err)
		}
		latency := runSuite(w, "BPlusTree", d, idx, *scale)
		chartPoints = append(chartPoints, degreePoint{degree: float64(d), latencyNs: float64(latency)})
	}

	if *pebbleDir != "" {
		idx, err := compare.OpenPebbleIndex(*pebbleDir)
		if err != nil {
			log.Fatalf("bptreebench: open pebble: %v", err)
		}
		runSuite(w, "Pebble", 0, idx, *scale)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("bptreebench: flush csv: %v", err)
	}

	if *chartPath != "" {
		if err := renderLatencyChart(*chartPath, chartPoints); err != nil {
			log.Fatalf("bptreebench: render chart: %v", err)
		}
	}

	fmt.Println("Benchmark complete.")
}

func parseDegrees(s string) ([]int, error) {
	var degrees []int
	cur := 0
	started := false
	flush := func() error {
		if !started {
			return nil
		}
		degrees = append(degrees, cur)
		cur, started = 0, false
		return nil
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			cur = cur*10 + int(r-'0')
			started = true
		case r == ',':
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("invalid degree list %q", s)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(degrees) == 0 {
		return nil, fmt.Errorf("empty degree list")
	}
	return degrees, nil
}

func runSuite(w *csv.Writer, name string, conf int, idx compare.Index, n int) int64 {
	fmt.Printf("Testing %s (Config: %d)\n", name, conf)
	confStr := fmt.Sprintf("%d", conf)

	start := time.Now()
	for k := 0; k < n; k++ {
		_ = idx.Insert(int64(k), []byte("v"))
	}
	insertLatency := time.Since(start).Nanoseconds() / int64(max(n, 1))

	stats := getDetailedMem()
	res := BenchResult{
		Name:      name,
		Config:    confStr,
		Operation: "Footprint_SteadyState",
		LatencyNs: insertLatency,
		MemMB:     stats.AllocMB,
		Objects:   stats.HeapObjects,
	}
	record(w, res)
	observeResult(res)

	start = time.Now()
	ExecuteWorkload(idx, OLTP, n/2)
	res = BenchResult{name, confStr, "Workload_OLTP", time.Since(start).Nanoseconds() / int64(max(n/2, 1)), getDetailedMem().AllocMB, 0}
	record(w, res)
	observeResult(res)

	start = time.Now()
	ExecuteWorkload(idx, OLAP, n/2)
	res = BenchResult{name, confStr, "Workload_OLAP", time.Since(start).Nanoseconds() / int64(max(n/2, 1)), getDetailedMem().AllocMB, 0}
	record(w, res)
	observeResult(res)

	start = time.Now()
	ExecuteWorkload(idx, Reporting, 100)
	res = BenchResult{name, confStr, "Workload_Range", time.Since(start).Nanoseconds() / 100, getDetailedMem().AllocMB, 0}
	record(w, res)
	observeResult(res)

	if err := idx.Close(); err != nil {
		log.Printf("bptreebench: close index %s: %v", name, err)
	}

	return insertLatency
}
