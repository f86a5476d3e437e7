// File: pktmbuf/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pktmbuf

import "github.com/momentics/hioload-pkt/api"

// PoolConfig describes a mempool to be created. Zero fields take defaults.
type PoolConfig struct {
	// Name identifies the pool in stats and diagnostics.
	Name string
	// Count is the number of buffers in the pool. Optimum is 2^q - 1.
	Count int
	// DataRoom is the fixed per-buffer capacity in bytes, headroom included.
	DataRoom int
	// Headroom is the default reserved space before valid data.
	Headroom int
	// NUMANode is the preferred node for the slab, -1 for any.
	NUMANode int
}

// DefaultPoolCount is used when PoolConfig.Count is zero.
const DefaultPoolCount = 8191 // 2^13 - 1

func (c PoolConfig) withDefaults() PoolConfig {
	if c.Name == "" {
		c.Name = "pktmbuf"
	}
	if c.Count == 0 {
		c.Count = DefaultPoolCount
	}
	if c.DataRoom == 0 {
		c.DataRoom = api.DefaultDataRoom
	}
	if c.Headroom == 0 {
		c.Headroom = api.DefaultHeadroom
	}
	return c
}
