package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric captures one enumeration run: how wide it fanned out, how
// much of the outcome tree it touched and how long it took.
type SearchMetric struct {
	Parallelism int
	Dice        int // dice remaining at enumeration start
	Forks       int // state copies made
	Leaves      int // terminal outcomes visited
	Duration    time.Duration
}

// LeavesPerSecond is the throughput of the run.
func (m SearchMetric) LeavesPerSecond() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Leaves) / m.Duration.Seconds()
}

// GameMetric captures one automated race.
type GameMetric struct {
	Winners   string
	Turns     int
	Legs      int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Collector accumulates enumeration counters. Implementations must be safe
// for concurrent use; branches report from worker goroutines.
type Collector interface {
	Start(parallelism, dice int)
	AddForks(n int)
	AddLeaves(n int)
	Complete() SearchMetric
}

type collector struct {
	parallelism int
	dice        int
	startTime   time.Time
	forks       atomic.Int64
	leaves      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(parallelism, dice int) {
	m.startTime = time.Now()
	m.parallelism = parallelism
	m.dice = dice
	m.forks.Store(0)
	m.leaves.Store(0)
}

func (m *collector) AddForks(n int) {
	m.forks.Add(int64(n))
}

func (m *collector) AddLeaves(n int) {
	m.leaves.Add(int64(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Parallelism: m.parallelism,
		Dice:        m.dice,
		Forks:       int(m.forks.Load()),
		Leaves:      int(m.leaves.Load()),
		Duration:    time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(parallelism, dice int) {}
func (m *dummyCollector) AddForks(n int)              {}
func (m *dummyCollector) AddLeaves(n int)             {}
func (m *dummyCollector) Complete() SearchMetric      { return SearchMetric{} }
