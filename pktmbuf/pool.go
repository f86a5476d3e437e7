// File: pktmbuf/pool.go
// Package pktmbuf implements arena-backed mempools for packet buffers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A Pool owns one contiguous slab of count*dataRoom bytes plus a parallel
// segment metadata array. Buffers are handed out as index+generation
// handles, never as raw pointers, so a released handle is detected instead
// of corrupting the arena. The free list is a bounded MPMC queue; steady
// state ownership of a pool is one worker by convention.

package pktmbuf

import (
	"fmt"
	"sync/atomic"

	"github.com/momentics/hioload-pkt/api"
	"github.com/momentics/hioload-pkt/internal/concurrency"
)

// segment is the per-buffer metadata record. pktLen and nbSegs are only
// meaningful in the head segment of a chain.
type segment struct {
	gen       uint32
	dataOff   uint32
	dataLen   uint32
	pktLen    uint32
	nbSegs    uint32
	next      uint32 // index+1 of the chained segment, 0 = none
	rssHash   uint32
	hashFlags uint64
}

// Pool is a fixed-size packet buffer mempool.
type Pool struct {
	name     string
	count    int
	dataRoom int
	headroom int
	numaNode int

	slab []byte
	segs []segment
	free *concurrency.LockFreeQueue[uint32]

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

// NewPool creates a pool per cfg. Capacity and headroom are fixed for the
// pool's lifetime; no operation may grow a buffer beyond DataRoom.
func NewPool(cfg PoolConfig) (*Pool, error) {
	cfg = cfg.withDefaults()
	if cfg.Count < 0 || cfg.DataRoom <= 0 {
		return nil, api.ErrInvalidArgument
	}
	if cfg.Headroom < 0 || cfg.Headroom > cfg.DataRoom {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			fmt.Sprintf("headroom %d exceeds data room %d", cfg.Headroom, cfg.DataRoom)).
			WithContext("pool", cfg.Name)
	}
	if cfg.NUMANode < -1 || cfg.NUMANode >= api.MaxNUMANodes {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			fmt.Sprintf("numa node %d out of range", cfg.NUMANode)).
			WithContext("pool", cfg.Name)
	}

	p := &Pool{
		name:     cfg.Name,
		count:    cfg.Count,
		dataRoom: cfg.DataRoom,
		headroom: cfg.Headroom,
		numaNode: cfg.NUMANode,
		slab:     make([]byte, cfg.Count*cfg.DataRoom),
		segs:     make([]segment, cfg.Count),
		free:     concurrency.NewLockFreeQueue[uint32](cfg.Count),
	}
	for i := 0; i < cfg.Count; i++ {
		p.segs[i] = segment{dataOff: uint32(cfg.Headroom), nbSegs: 1}
		p.free.Enqueue(uint32(i))
	}
	return p, nil
}

// Name returns the pool identifier.
func (p *Pool) Name() string { return p.name }

// DataRoomSize exposes the fixed per-buffer capacity for editor bounds checks.
func (p *Pool) DataRoomSize() int { return p.dataRoom }

// DefaultHeadroom returns the headroom a fresh or reset buffer carries.
func (p *Pool) DefaultHeadroom() int { return p.headroom }

// NUMANode returns the preferred node this pool was created for.
func (p *Pool) NUMANode() int { return p.numaNode }

// AvailCount returns the number of free buffers. Approximate under contention.
func (p *Pool) AvailCount() int { return p.free.Len() }

// Alloc takes one buffer from the pool. The buffer comes back empty:
// data_len = pkt_len = 0, headroom at the pool default, full tailroom.
func (p *Pool) Alloc() (Mbuf, error) {
	idx, ok := p.free.Dequeue()
	if !ok {
		return Mbuf{}, api.ErrPoolExhausted
	}
	seg := &p.segs[idx]
	seg.dataOff = uint32(p.headroom)
	seg.dataLen = 0
	seg.pktLen = 0
	seg.nbSegs = 1
	seg.next = 0
	seg.rssHash = 0
	seg.hashFlags = 0
	p.totalAlloc.Add(1)
	return Mbuf{pool: p, idx: idx, gen: seg.gen}, nil
}

// AllocBatch fills b up to its capacity, stopping early if the pool runs
// dry. Returns the number of buffers added.
func (p *Pool) AllocBatch(b *Batch) int {
	n := 0
	for b.Len() < b.Cap() {
		m, err := p.Alloc()
		if err != nil {
			break
		}
		b.Append(m)
		n++
	}
	return n
}

// Free returns m and its whole chain to the pool. The handle's generation
// is retired, so any later use of m fails with ErrBufferReleased.
func (p *Pool) Free(m Mbuf) error {
	if m.pool != p {
		return api.ErrInvalidArgument
	}
	seg, err := m.seg()
	if err != nil {
		return err
	}
	p.freeChain(m.idx, seg)
	return nil
}

// freeChain scrubs and recycles the segment at idx and everything linked
// behind it.
func (p *Pool) freeChain(idx uint32, seg *segment) {
	for {
		next := seg.next
		p.recycle(idx, seg)
		if next == 0 {
			return
		}
		idx = next - 1
		seg = &p.segs[idx]
	}
}

// recycle scrubs one segment and pushes its index back on the free list.
func (p *Pool) recycle(idx uint32, seg *segment) {
	seg.gen++
	seg.dataOff = uint32(p.headroom)
	seg.dataLen = 0
	seg.pktLen = 0
	seg.nbSegs = 1
	seg.next = 0
	seg.rssHash = 0
	seg.hashFlags = 0
	p.free.Enqueue(idx)
	p.totalFree.Add(1)
}

// Stats returns an accounting snapshot.
func (p *Pool) Stats() api.PoolStats {
	alloc := p.totalAlloc.Load()
	freed := p.totalFree.Load()
	return api.PoolStats{
		TotalAlloc: alloc,
		TotalFree:  freed,
		InUse:      alloc - freed,
		NUMANode:   p.numaNode,
	}
}

// base returns the slab offset of buffer idx.
func (p *Pool) base(idx uint32) int {
	return int(idx) * p.dataRoom
}
