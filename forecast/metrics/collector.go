package metrics

import (
	"sync/atomic"
	"time"
)

// RunMetric summarizes one predictor run.
type RunMetric struct {
	Workers     int
	Iterations  int
	Simulations int
	Duration    time.Duration
}

type Collector interface {
	Start(workers, iterations int)
	AddSimulation()
	Complete() RunMetric
}

type collector struct {
	workers     int
	iterations  int
	startTime   time.Time
	simulations atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(workers, iterations int) {
	c.startTime = time.Now()
	c.workers = workers
	c.iterations = iterations
	c.simulations.Store(0)
}

func (c *collector) AddSimulation() {
	c.simulations.Add(1)
}

func (c *collector) Complete() RunMetric {
	return RunMetric{
		Workers:     c.workers,
		Iterations:  c.iterations,
		Simulations: int(c.simulations.Load()),
		Duration:    time.Since(c.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that measures nothing, for callers
// that do not care about throughput.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(int, int)      {}
func (dummyCollector) AddSimulation()      {}
func (dummyCollector) Complete() RunMetric { return RunMetric{} }
