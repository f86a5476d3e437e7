// File: ethdev/softport.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Software packet device. Stands in for NIC-backed ports in tests and
// single-host pipelines: rx queues are fed by Inject (or by the port's own
// tx path in loopback mode), tx queues are bounded descriptor rings whose
// fullness is the only backpressure signal. Every queue is single-owner by
// convention, so the rx backlog is a plain unsynchronized FIFO.

package ethdev

import (
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-pkt/api"
	"github.com/momentics/hioload-pkt/internal/concurrency"
	"github.com/momentics/hioload-pkt/pktmbuf"
)

// SoftPortConfig sizes a software port. Zero fields take defaults.
type SoftPortConfig struct {
	// Queues is the number of rx/tx queue pairs.
	Queues int
	// TxRingSize bounds each tx descriptor ring; must be a power of two.
	TxRingSize int
	// Loopback redelivers transmitted packets to the same queue's rx
	// backlog instead of freeing them on completion.
	Loopback bool
}

const defaultTxRingSize = 512

type softQueue struct {
	backlog *queue.Queue
	txRing  *concurrency.RingBuffer[pktmbuf.Mbuf]
}

// SoftPort implements Device in software.
type SoftPort struct {
	queues   []softQueue
	loopback bool
	closed   atomic.Bool

	rxPackets  atomic.Int64
	txPackets  atomic.Int64
	txRejected atomic.Int64
}

// NewSoftPort creates a software port per cfg.
func NewSoftPort(cfg SoftPortConfig) *SoftPort {
	if cfg.Queues <= 0 {
		cfg.Queues = 1
	}
	if cfg.TxRingSize <= 0 {
		cfg.TxRingSize = defaultTxRingSize
	}
	p := &SoftPort{
		queues:   make([]softQueue, cfg.Queues),
		loopback: cfg.Loopback,
	}
	for i := range p.queues {
		p.queues[i] = softQueue{
			backlog: queue.New(),
			txRing:  concurrency.NewRingBuffer[pktmbuf.Mbuf](uint64(cfg.TxRingSize)),
		}
	}
	return p
}

// NumQueues returns the configured queue pair count.
func (p *SoftPort) NumQueues() int { return len(p.queues) }

// Inject feeds frames into a queue's rx backlog, as a NIC delivering
// received packets would. Ownership of the mbufs moves to the port until
// a RxBurst hands them out again.
func (p *SoftPort) Inject(q QueueID, mbufs ...pktmbuf.Mbuf) {
	if p.closed.Load() || int(q) >= len(p.queues) {
		for _, m := range mbufs {
			_ = m.Free()
		}
		return
	}
	bl := p.queues[q].backlog
	for _, m := range mbufs {
		bl.Add(m)
	}
}

// RxBurst implements Device. One non-blocking poll: up to len(out) queued
// frames, fewer when the backlog runs dry.
func (p *SoftPort) RxBurst(q QueueID, out []pktmbuf.Mbuf) int {
	if p.closed.Load() || int(q) >= len(p.queues) {
		return 0
	}
	bl := p.queues[q].backlog
	n := 0
	for n < len(out) && bl.Length() > 0 {
		out[n] = bl.Remove().(pktmbuf.Mbuf)
		n++
	}
	p.rxPackets.Add(int64(n))
	return n
}

// TxBurst implements Device. Completed descriptors are reclaimed first,
// the way drivers recycle their tx ring on the transmit path; then bufs
// are enqueued until the ring fills. The return value is the accepted
// count; everything past it remains caller-owned.
func (p *SoftPort) TxBurst(q QueueID, bufs []pktmbuf.Mbuf) int {
	if p.closed.Load() || int(q) >= len(p.queues) {
		return 0
	}
	sq := &p.queues[q]
	p.reclaim(sq, api.MaxBurstSize)

	n := 0
	for n < len(bufs) {
		if !sq.txRing.Enqueue(bufs[n]) {
			break
		}
		n++
	}
	p.txPackets.Add(int64(n))
	p.txRejected.Add(int64(len(bufs) - n))
	return n
}

// reclaim completes up to max tx descriptors: loopback redelivers the
// frame to the same queue's rx backlog, otherwise it is freed to its pool.
func (p *SoftPort) reclaim(sq *softQueue, max int) {
	for i := 0; i < max; i++ {
		m, ok := sq.txRing.Dequeue()
		if !ok {
			return
		}
		if p.loopback {
			sq.backlog.Add(m)
		} else {
			_ = m.Free()
		}
	}
}

// Flush forces completion of every pending tx descriptor on queue q.
func (p *SoftPort) Flush(q QueueID) {
	if p.closed.Load() || int(q) >= len(p.queues) {
		return
	}
	sq := &p.queues[q]
	p.reclaim(sq, sq.txRing.Cap())
}

// Stats implements Device.
func (p *SoftPort) Stats() api.DeviceStats {
	return api.DeviceStats{
		RxPackets:  p.rxPackets.Load(),
		TxPackets:  p.txPackets.Load(),
		TxRejected: p.txRejected.Load(),
	}
}

// Close drains every queue, freeing all held buffers. Burst calls on a
// closed port receive and accept nothing.
func (p *SoftPort) Close() error {
	if p.closed.Swap(true) {
		return nil
	}
	for i := range p.queues {
		sq := &p.queues[i]
		for {
			m, ok := sq.txRing.Dequeue()
			if !ok {
				break
			}
			_ = m.Free()
		}
		for sq.backlog.Length() > 0 {
			m := sq.backlog.Remove().(pktmbuf.Mbuf)
			_ = m.Free()
		}
	}
	return nil
}

var _ Device = (*SoftPort)(nil)
