package world

import (
	"sync/atomic"
	"time"
)

// GenerationMetrics accumulates pipeline counters during world construction.
// Counters are atomic so post-construction readers can snapshot them while
// other consumers hold the world.
type GenerationMetrics struct {
	voxelsClassified atomic.Int64
	featuresCarved   atomic.Int64
	caveEntrances    atomic.Int64
	climbRoutes      atomic.Int64
	aerialColumns    atomic.Int64
	rampColumns      atomic.Int64
	shafts           atomic.Int64
	resourcesPlaced  atomic.Int64

	synthesisTime    atomic.Int64
	gridTime         atomic.Int64
	connectivityTime atomic.Int64
	resourceTime     atomic.Int64
}

// GenerationSnapshot captures a point-in-time copy of generation metrics.
type GenerationSnapshot struct {
	VoxelsClassified int64
	FeaturesCarved   int64
	CaveEntrances    int64
	ClimbRoutes      int64
	AerialColumns    int64
	RampColumns      int64
	Shafts           int64
	ResourcesPlaced  int64

	SynthesisTime    time.Duration
	GridTime         time.Duration
	ConnectivityTime time.Duration
	ResourceTime     time.Duration
}

// TotalTime sums the per-phase durations.
func (s GenerationSnapshot) TotalTime() time.Duration {
	return s.SynthesisTime + s.GridTime + s.ConnectivityTime + s.ResourceTime
}

// Snapshot captures the current counter values.
func (m *GenerationMetrics) Snapshot() GenerationSnapshot {
	if m == nil {
		return GenerationSnapshot{}
	}
	return GenerationSnapshot{
		VoxelsClassified: m.voxelsClassified.Load(),
		FeaturesCarved:   m.featuresCarved.Load(),
		CaveEntrances:    m.caveEntrances.Load(),
		ClimbRoutes:      m.climbRoutes.Load(),
		AerialColumns:    m.aerialColumns.Load(),
		RampColumns:      m.rampColumns.Load(),
		Shafts:           m.shafts.Load(),
		ResourcesPlaced:  m.resourcesPlaced.Load(),
		SynthesisTime:    time.Duration(m.synthesisTime.Load()),
		GridTime:         time.Duration(m.gridTime.Load()),
		ConnectivityTime: time.Duration(m.connectivityTime.Load()),
		ResourceTime:     time.Duration(m.resourceTime.Load()),
	}
}

// Reset zeroes all counters in the metrics set.
func (m *GenerationMetrics) Reset() {
	if m == nil {
		return
	}
	m.voxelsClassified.Store(0)
	m.featuresCarved.Store(0)
	m.caveEntrances.Store(0)
	m.climbRoutes.Store(0)
	m.aerialColumns.Store(0)
	m.rampColumns.Store(0)
	m.shafts.Store(0)
	m.resourcesPlaced.Store(0)
	m.synthesisTime.Store(0)
	m.gridTime.Store(0)
	m.connectivityTime.Store(0)
	m.resourceTime.Store(0)
}

func (m *GenerationMetrics) recordCarve() {
	m.featuresCarved.Add(1)
}

func (m *GenerationMetrics) recordPhase(counter *atomic.Int64, start time.Time) {
	counter.Add(time.Since(start).Nanoseconds())
}
