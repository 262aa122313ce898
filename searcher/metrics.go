package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics describes one completed search invocation.
type SearchMetrics struct {
	StartTime     time.Time
	Duration      time.Duration
	Iterations    int64
	RolloutSteps  int64
	RolloutDeaths int64
}

type Collector interface {
	Start()
	AddIteration()
	AddRolloutStep()
	AddRolloutDeath()
	Complete() SearchMetrics
}

type collector struct {
	startTime     time.Time
	iterations    atomic.Int64
	rolloutSteps  atomic.Int64
	rolloutDeaths atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.iterations.Store(0)
	c.rolloutSteps.Store(0)
	c.rolloutDeaths.Store(0)
}

func (c *collector) AddIteration() {
	c.iterations.Add(1)
}

func (c *collector) AddRolloutStep() {
	c.rolloutSteps.Add(1)
}

func (c *collector) AddRolloutDeath() {
	c.rolloutDeaths.Add(1)
}

func (c *collector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:     c.startTime,
		Duration:      time.Since(c.startTime),
		Iterations:    c.iterations.Load(),
		RolloutSteps:  c.rolloutSteps.Load(),
		RolloutDeaths: c.rolloutDeaths.Load(),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector for searches that do not care
// about instrumentation.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start()                  {}
func (dummyCollector) AddIteration()           {}
func (dummyCollector) AddRolloutStep()         {}
func (dummyCollector) AddRolloutDeath()        {}
func (dummyCollector) Complete() SearchMetrics { return SearchMetrics{} }
