// File: api/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Resource accounting snapshots for pools and devices.

package api

// PoolStats aggregates buffer allocation/reuse stats for one mempool.
type PoolStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
	NUMANode   int
}

// DeviceStats aggregates per-device burst counters.
type DeviceStats struct {
	RxPackets int64
	TxPackets int64
	// TxRejected counts buffers not accepted by a saturated tx ring.
	// It is backpressure accounting, not an error counter.
	TxRejected int64
}
