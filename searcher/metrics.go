package searcher

import (
	"sync/atomic"
	"time"
)

// Metrics summarizes one search: how many positions were visited and how
// their lines ended.
type Metrics struct {
	Duration  time.Duration
	Nodes     int64
	Solutions int64
	DeadEnds  int64
	Truncated int64 // branches dropped at the move limit
}

// NodesPerSecond is the position visit throughput over the whole search.
func (m Metrics) NodesPerSecond() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Nodes) / m.Duration.Seconds()
}

type collector interface {
	start()
	addNode()
	addSolution()
	addDeadEnd()
	addTruncated()
	complete() Metrics
}

// liveCollector counts with atomics so one instance can be shared by every
// goroutine of a parallel search.
type liveCollector struct {
	startTime time.Time
	nodes     atomic.Int64
	solutions atomic.Int64
	deadEnds  atomic.Int64
	truncated atomic.Int64
}

func newCollector() *liveCollector { return &liveCollector{} }

func (c *liveCollector) start()        { c.startTime = time.Now() }
func (c *liveCollector) addNode()      { c.nodes.Add(1) }
func (c *liveCollector) addSolution()  { c.solutions.Add(1) }
func (c *liveCollector) addDeadEnd()   { c.deadEnds.Add(1) }
func (c *liveCollector) addTruncated() { c.truncated.Add(1) }

func (c *liveCollector) complete() Metrics {
	return Metrics{
		Duration:  time.Since(c.startTime),
		Nodes:     c.nodes.Load(),
		Solutions: c.solutions.Load(),
		DeadEnds:  c.deadEnds.Load(),
		Truncated: c.truncated.Load(),
	}
}

// dummyCollector is the default: a no-op to minimize overhead when nobody
// asked for numbers.
type dummyCollector struct{}

func (dummyCollector) start()            {}
func (dummyCollector) addNode()          {}
func (dummyCollector) addSolution()      {}
func (dummyCollector) addDeadEnd()       {}
func (dummyCollector) addTruncated()     {}
func (dummyCollector) complete() Metrics { return Metrics{} }
