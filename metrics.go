package defectgo

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/defectgo/model"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordClassify is called after each classification pass.
	// atoms is the snapshot size, duration is the total time taken,
	// err is nil if successful.
	RecordClassify(atoms int, duration time.Duration, err error)

	// RecordLabels is called after a successful pass with the number of
	// atoms assigned to each label.
	RecordLabels(counts map[model.Label]int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordClassify(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordLabels(map[model.Label]int)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ClassifyCount      atomic.Int64
	ClassifyErrors     atomic.Int64
	ClassifyTotalNanos atomic.Int64
	AtomsClassified    atomic.Int64
	LabelCounts        [model.NumLabels]atomic.Int64
}

// RecordClassify implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClassify(atoms int, duration time.Duration, err error) {
	b.ClassifyCount.Add(1)
	b.ClassifyTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ClassifyErrors.Add(1)
		return
	}
	b.AtomsClassified.Add(int64(atoms))
}

// RecordLabels implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLabels(counts map[model.Label]int) {
	for label, count := range counts {
		if label.Valid() {
			b.LabelCounts[label].Add(int64(count))
		}
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		ClassifyCount:    b.ClassifyCount.Load(),
		ClassifyErrors:   b.ClassifyErrors.Load(),
		ClassifyAvgNanos: b.getAvgClassifyNanos(),
		AtomsClassified:  b.AtomsClassified.Load(),
	}
	for i := range stats.LabelCounts {
		stats.LabelCounts[i] = b.LabelCounts[i].Load()
	}
	return stats
}

func (b *BasicMetricsCollector) getAvgClassifyNanos() int64 {
	count := b.ClassifyCount.Load()
	if count == 0 {
		return 0
	}
	return b.ClassifyTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ClassifyCount    int64
	ClassifyErrors   int64
	ClassifyAvgNanos int64
	AtomsClassified  int64
	LabelCounts      [model.NumLabels]int64
}
