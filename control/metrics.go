// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector. Exposes counters in a thread-safe map with
// dynamic registration, plus samplers that snapshot pool and device
// accounting without touching the burst path.

package control

import (
	"fmt"
	"sync"
	"time"

	"github.com/momentics/hioload-pkt/api"
)

// PoolStatsSource is anything exposing mempool accounting.
type PoolStatsSource interface {
	Name() string
	Stats() api.PoolStats
}

// DeviceStatsSource is anything exposing device burst counters.
type DeviceStatsSource interface {
	Stats() api.DeviceStats
}

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// LastUpdated reports the time of the most recent Set.
func (mr *MetricsRegistry) LastUpdated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}

// SamplePool publishes one pool's accounting snapshot.
func (mr *MetricsRegistry) SamplePool(p PoolStatsSource) {
	s := p.Stats()
	prefix := "pool." + p.Name()
	mr.Set(prefix+".alloc", s.TotalAlloc)
	mr.Set(prefix+".free", s.TotalFree)
	mr.Set(prefix+".in_use", s.InUse)
}

// SampleDevice publishes one device's burst counters under the given port id.
func (mr *MetricsRegistry) SampleDevice(port uint16, d DeviceStatsSource) {
	s := d.Stats()
	prefix := fmt.Sprintf("port.%d", port)
	mr.Set(prefix+".rx_packets", s.RxPackets)
	mr.Set(prefix+".tx_packets", s.TxPackets)
	mr.Set(prefix+".tx_rejected", s.TxRejected)
}
