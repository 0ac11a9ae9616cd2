package taskgroup

import (
	"time"

	"github.com/ygrebnov/taskgroup/metrics"
)

// groupMetrics bundles the instruments a group reports through, built from
// whatever metrics.Provider the group was configured with. The zero value is
// never used directly — newGroupMetrics always runs against at least a
// metrics.NoopProvider.
type groupMetrics struct {
	spawned   metrics.Counter
	completed metrics.Counter
	panicked  metrics.Counter
	pending   metrics.UpDownCounter
	waitTime  metrics.Histogram
}

func newGroupMetrics(p metrics.Provider) *groupMetrics {
	if p == nil {
		p = metrics.NewNoopProvider()
	}
	return &groupMetrics{
		spawned:   p.Counter("taskgroup.children.spawned", metrics.WithUnit("1")),
		completed: p.Counter("taskgroup.children.completed", metrics.WithUnit("1")),
		panicked:  p.Counter("taskgroup.children.panicked", metrics.WithUnit("1")),
		pending:   p.UpDownCounter("taskgroup.children.pending", metrics.WithUnit("1")),
		waitTime:  p.Histogram("taskgroup.next.wait_seconds", metrics.WithUnit("seconds")),
	}
}

func (m *groupMetrics) onSpawn() {
	m.spawned.Add(1)
	m.pending.Add(1)
}

func (m *groupMetrics) onOffer(panicked bool) {
	m.completed.Add(1)
	m.pending.Add(-1)
	if panicked {
		m.panicked.Add(1)
	}
}

func (m *groupMetrics) onWait(started time.Time) {
	m.waitTime.Record(time.Since(started).Seconds())
}
