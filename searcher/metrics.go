package searcher

import (
	"sync/atomic"
	"time"
)

type Metrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64
	TTProbes  int64
	TTHits    int64
	Cutoffs   int64
	Depth     int  // deepest completed iteration
	Aborted   bool // an iteration was interrupted by a budget
}

type MetricsCollector interface {
	Start()
	AddNode()
	AddProbe(hit bool)
	AddCutoff()
	CompleteDepth(depth int)
	Abort()
	Complete() Metrics
}

type metricsCollector struct {
	startTime time.Time
	nodes     atomic.Int64
	probes    atomic.Int64
	hits      atomic.Int64
	cutoffs   atomic.Int64
	depth     atomic.Int32
	aborted   atomic.Bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.probes.Store(0)
	m.hits.Store(0)
	m.cutoffs.Store(0)
	m.depth.Store(0)
	m.aborted.Store(false)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddProbe(hit bool) {
	m.probes.Add(1)
	if hit {
		m.hits.Add(1)
	}
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *metricsCollector) CompleteDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *metricsCollector) Abort() {
	m.aborted.Store(true)
}

func (m *metricsCollector) Complete() Metrics {
	return Metrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes.Load(),
		TTProbes:  m.probes.Load(),
		TTHits:    m.hits.Load(),
		Cutoffs:   m.cutoffs.Load(),
		Depth:     int(m.depth.Load()),
		Aborted:   m.aborted.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()            {}
func (m *noMetricsCollector) AddNode()          {}
func (m *noMetricsCollector) AddProbe(hit bool) {}
func (m *noMetricsCollector) AddCutoff()        {}
func (m *noMetricsCollector) CompleteDepth(int) {}
func (m *noMetricsCollector) Abort()            {}
func (m *noMetricsCollector) Complete() Metrics { return Metrics{} }
