// Package profiler - operation timing for the banner pipeline stages.
package profiler

import (
	"fmt"
	"sync"
	"time"
)

// StageTimer tracks timing statistics for named pipeline stages (decode,
// mask, synthesize, compose). Thread-safe, though the pipeline itself runs
// stages sequentially.
type StageTimer struct {
	mu     sync.Mutex
	stages map[string]*stageStats
}

type stageStats struct {
	count   int64
	total   time.Duration
	minTime time.Duration
	maxTime time.Duration
}

// StageStats is a snapshot of one stage's timing statistics.
type StageStats struct {
	Name    string
	Count   int64
	Total   time.Duration
	Average time.Duration
	Min     time.Duration
	Max     time.Duration
}

// NewStageTimer creates an empty timer.
func NewStageTimer() *StageTimer {
	return &StageTimer{stages: make(map[string]*stageStats)}
}

// Start begins timing a stage; the returned func records the elapsed time
// when called, so it composes with defer:
//
//	defer timer.Start("decode")()
func (t *StageTimer) Start(name string) func() {
	start := time.Now()
	return func() {
		t.Record(name, time.Since(start))
	}
}

// Record adds one completed run of the named stage.
func (t *StageTimer) Record(name string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.stages[name]
	if !ok {
		s = &stageStats{minTime: d, maxTime: d}
		t.stages[name] = s
	}
	s.count++
	s.total += d
	if d < s.minTime {
		s.minTime = d
	}
	if d > s.maxTime {
		s.maxTime = d
	}
}

// Stats returns a snapshot for the named stage. The second return is false
// when the stage has never been recorded.
func (t *StageTimer) Stats(name string) (StageStats, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.stages[name]
	if !ok {
		return StageStats{}, false
	}
	return StageStats{
		Name:    name,
		Count:   s.count,
		Total:   s.total,
		Average: s.total / time.Duration(s.count),
		Min:     s.minTime,
		Max:     s.maxTime,
	}, true
}

func (s StageStats) String() string {
	return fmt.Sprintf("%s: count=%d avg=%s min=%s max=%s",
		s.Name, s.Count, s.Average, s.Min, s.Max)
}
