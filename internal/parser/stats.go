package parser

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/swimbase/internal/metrics"
)

// LoadStats tracks statistics about one load run.
type LoadStats struct {
	FilesRead       int
	RowsProcessed   int
	ResultsCreated  int
	SwimmersCreated int
	SkippedRows     map[string]int
	LoadDuration    time.Duration
}

// NewLoadStats creates an empty stats tracker.
func NewLoadStats() *LoadStats {
	return &LoadStats{
		SkippedRows: make(map[string]int),
	}
}

// SkippedTotal sums the skipped rows across all reasons.
func (s *LoadStats) SkippedTotal() int {
	total := 0
	for _, n := range s.SkippedRows {
		total += n
	}
	return total
}

// String returns a formatted string representation of the stats.
func (s *LoadStats) String() string {
	skipRate := float64(0)
	if s.RowsProcessed > 0 {
		skipRate = float64(s.SkippedTotal()) / float64(s.RowsProcessed) * 100
	}
	return fmt.Sprintf(
		"LoadStats{Files=%d, Rows=%d, Results=%d, Swimmers=%d, Skipped=%d (%.1f%%), Duration=%v}",
		s.FilesRead,
		s.RowsProcessed,
		s.ResultsCreated,
		s.SwimmersCreated,
		s.SkippedTotal(),
		skipRate,
		s.LoadDuration,
	)
}

// Log writes a load summary at info level with skip reasons broken out.
func (s *LoadStats) Log(log *logrus.Logger) {
	log.WithFields(logrus.Fields{
		"files":    s.FilesRead,
		"rows":     s.RowsProcessed,
		"results":  s.ResultsCreated,
		"swimmers": s.SwimmersCreated,
		"skipped":  s.SkippedTotal(),
		"duration": s.LoadDuration.String(),
	}).Info("Load complete")
	for reason, count := range s.SkippedRows {
		log.WithFields(logrus.Fields{
			"reason": reason,
			"count":  count,
		}).Debug("Skipped rows")
	}
}

// skipRow records a skipped row with its reason.
func (p *Processor) skipRow(reason, line string) {
	p.stats.SkippedRows[reason]++
	metrics.RecordSkippedRow(reason)
	snippet := line
	if len(snippet) > 40 {
		snippet = snippet[:40]
	}
	p.log.WithFields(logrus.Fields{
		"reason": reason,
		"line":   snippet,
	}).Debug("Skipping row")
}
