package pathfinding

import (
	"sync/atomic"
	"time"
)

// NavigatorMetrics accumulates profiling counters for Navigator searches.
// All fields are atomic, so concurrent route queries over a shared world can
// report into one set.
type NavigatorMetrics struct {
	routesRequested atomic.Int64
	routesFound     atomic.Int64
	routesFailed    atomic.Int64
	nodesExpanded   atomic.Int64
	neighborsTested atomic.Int64
	costRejections  atomic.Int64
	searchTime      atomic.Int64
}

// MetricsSnapshot captures a point-in-time copy of navigator metrics.
type MetricsSnapshot struct {
	RoutesRequested int64
	RoutesFound     int64
	RoutesFailed    int64
	NodesExpanded   int64
	NeighborsTested int64
	CostRejections  int64
	SearchTime      time.Duration
}

// Snapshot captures the current counter values.
func (m *NavigatorMetrics) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	return MetricsSnapshot{
		RoutesRequested: m.routesRequested.Load(),
		RoutesFound:     m.routesFound.Load(),
		RoutesFailed:    m.routesFailed.Load(),
		NodesExpanded:   m.nodesExpanded.Load(),
		NeighborsTested: m.neighborsTested.Load(),
		CostRejections:  m.costRejections.Load(),
		SearchTime:      time.Duration(m.searchTime.Load()),
	}
}

// Reset zeroes all counters in the metrics set.
func (m *NavigatorMetrics) Reset() {
	if m == nil {
		return
	}
	m.routesRequested.Store(0)
	m.routesFound.Store(0)
	m.routesFailed.Store(0)
	m.nodesExpanded.Store(0)
	m.neighborsTested.Store(0)
	m.costRejections.Store(0)
	m.searchTime.Store(0)
}
