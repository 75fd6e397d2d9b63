package main

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	opLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bptreebench",
		Name:      "operation_latency_ns",
		Help:      "Per-operation latency in nanoseconds, by structure and operation.",
		Buckets:   prometheus.ExponentialBuckets(100, 2, 20),
	}, []string{"structure", "operation"})

	heapAlloc = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "bptreebench",
		Name:      "heap_alloc_mb",
		Help:      "Live heap allocation in MB, sampled after a forced GC.",
	}, []string{"structure", "config"})
)

// observeResult exports a completed BenchResult as Prometheus samples,
// alongside (not instead of) the CSV row the teacher's harness wrote.
func observeResult(res BenchResult) {
	opLatency.WithLabelValues(res.Name, res.Operation).Observe(float64(res.LatencyNs))
	heapAlloc.WithLabelValues(res.Name, res.Config).Set(float64(res.MemMB))
}

// serveMetrics exposes /metrics on addr for the life of the process; run it
// in its own goroutine. It returns nothing: a server error other than
// http.ErrServerClosed is logged.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Printf("bptreebench: serving /metrics on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
		log.Printf("bptreebench: metrics server stopped: %v", err)
	}
}
