package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

func TestPrometheusScanMetrics_Observe(t *testing.T) {
	p := NewPrometheusScanMetrics("")

	p.Observe(ScanObservation{
		Files:     10,
		CacheHits: 7,
		Tokenized: 3,
		Pruned:    1,
		Entries:   42,
		Warnings:  map[m.WarningKind]int{m.WarningUnresolvedCall: 2},
		Duration:  150 * time.Millisecond,
	})

	assert.InDelta(t, 1, testutil.ToFloat64(p.scans), 0)
	assert.InDelta(t, 10, testutil.ToFloat64(p.files), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(p.cacheHits), 0)
	assert.InDelta(t, 42, testutil.ToFloat64(p.entries), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(p.warnings.WithLabelValues(string(m.WarningUnresolvedCall))), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(p.warnings.WithLabelValues(string(m.WarningTokenizeFailed))), 0)

	count, err := testutil.GatherAndCount(p.Registry(), "glotscan_scan_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, p.Flush(), "flush without a path is a no-op")
}

func TestPrometheusScanMetrics_FlushWritesTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics", "glotscan.prom")
	p := NewPrometheusScanMetrics(path)

	p.Observe(ScanObservation{Files: 3, Tokenized: 3, Entries: 5})
	require.NoError(t, p.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.Contains(text, "glotscan_scan_files 3"), text)
	assert.Contains(t, text, "glotscan_collection_entries 5")
	assert.Contains(t, text, "# TYPE glotscan_scans_total counter")
}

func TestNopScanMetrics(t *testing.T) {
	var sink ScanMetrics = NopScanMetrics{}

	sink.Observe(ScanObservation{Files: 1})
	require.NoError(t, sink.Flush())
}
