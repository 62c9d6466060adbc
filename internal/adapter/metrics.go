package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

// ScanObservation summarises one scan for metrics.
type ScanObservation struct {
	Files     int
	CacheHits int
	Tokenized int
	Pruned    int
	Skipped   int
	Entries   int
	Warnings  map[m.WarningKind]int
	Duration  time.Duration
}

// ScanMetrics records scan observations.
type ScanMetrics interface {
	Observe(o ScanObservation)
	// Flush publishes the recorded values. It is a no-op for sinks that
	// publish continuously.
	Flush() error
}

// PrometheusScanMetrics keeps scan metrics in a private registry and
// writes them in the node_exporter textfile format on Flush.
type PrometheusScanMetrics struct {
	registry *prometheus.Registry
	path     string

	scans     prometheus.Counter
	files     prometheus.Gauge
	cacheHits prometheus.Gauge
	tokenized prometheus.Gauge
	pruned    prometheus.Gauge
	skipped   prometheus.Gauge
	entries   prometheus.Gauge
	warnings  *prometheus.GaugeVec
	duration  prometheus.Histogram
}

// NewPrometheusScanMetrics creates the metrics. An empty path disables
// writing on Flush.
func NewPrometheusScanMetrics(path string) *PrometheusScanMetrics {
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "glotscan", Name: name, Help: help})
	}

	p := &PrometheusScanMetrics{
		registry: prometheus.NewRegistry(),
		path:     path,
		scans: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "glotscan",
			Name:      "scans_total",
			Help:      "Number of completed scans",
		}),
		files:     gauge("scan_files", "Source files enumerated by the last scan"),
		cacheHits: gauge("scan_cache_hits", "Files whose cached extraction was reused"),
		tokenized: gauge("scan_files_tokenized", "Files tokenized by the last scan"),
		pruned:    gauge("scan_cache_pruned", "Cache records pruned by the last scan"),
		skipped:   gauge("scan_files_skipped", "Files skipped because they could not be read or tokenized"),
		entries:   gauge("collection_entries", "Distinct string entries in the collection"),
		warnings: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "glotscan",
			Name:      "collection_warnings",
			Help:      "Warnings in the collection by kind",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "glotscan",
			Name:      "scan_duration_seconds",
			Help:      "Duration of scans in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	p.registry.MustRegister(
		p.scans, p.files, p.cacheHits, p.tokenized, p.pruned, p.skipped,
		p.entries, p.warnings, p.duration,
	)

	return p
}

// Registry exposes the underlying registry.
func (p *PrometheusScanMetrics) Registry() *prometheus.Registry {
	return p.registry
}

// Observe implements ScanMetrics.
func (p *PrometheusScanMetrics) Observe(o ScanObservation) {
	p.scans.Inc()
	p.files.Set(float64(o.Files))
	p.cacheHits.Set(float64(o.CacheHits))
	p.tokenized.Set(float64(o.Tokenized))
	p.pruned.Set(float64(o.Pruned))
	p.skipped.Set(float64(o.Skipped))
	p.entries.Set(float64(o.Entries))
	p.duration.Observe(o.Duration.Seconds())

	p.warnings.Reset()

	for _, kind := range []m.WarningKind{
		m.WarningUnresolvedCall, m.WarningUnreadableFile, m.WarningTokenizeFailed, m.WarningPlaceholderMismatch,
	} {
		p.warnings.WithLabelValues(string(kind)).Set(float64(o.Warnings[kind]))
	}
}

// Flush implements ScanMetrics.
func (p *PrometheusScanMetrics) Flush() error {
	if p.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o750); err != nil {
		return fmt.Errorf("create metrics directory: %w", err)
	}

	if err := prometheus.WriteToTextfile(p.path, p.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}

	slog.Debug("Wrote scan metrics", "path", p.path)

	return nil
}

// NopScanMetrics discards observations.
type NopScanMetrics struct{}

func (NopScanMetrics) Observe(ScanObservation) {}
func (NopScanMetrics) Flush() error            { return nil }
