// File: ethdev/device.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Device contract and the global port table. Attach/Detach are init-time
// operations; the burst path does a single atomic slot load.

package ethdev

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-pkt/api"
	"github.com/momentics/hioload-pkt/pktmbuf"
)

// PortID identifies an attached device.
type PortID uint16

// QueueID identifies one rx/tx queue of a device.
type QueueID uint16

// Device is a packet device exposing non-blocking burst I/O.
//
// RxBurst fills out with up to len(out) received buffers and returns the
// count; ownership of every returned buffer transfers to the caller.
// TxBurst attempts to enqueue all bufs and returns how many were accepted;
// accepted buffers belong to the device and are freed on completion,
// the rest stay with the caller. Partial acceptance is the backpressure
// signal, not a failure.
type Device interface {
	RxBurst(queue QueueID, out []pktmbuf.Mbuf) int
	TxBurst(queue QueueID, bufs []pktmbuf.Mbuf) int
	Stats() api.DeviceStats
	Close() error
}

type slot struct{ dev Device }

var (
	attachMu sync.Mutex
	ports    [api.MaxEthPorts]atomic.Pointer[slot]
)

// Attach registers dev in the first free port slot and returns its id.
func Attach(dev Device) (PortID, error) {
	if dev == nil {
		return 0, api.ErrInvalidArgument
	}
	attachMu.Lock()
	defer attachMu.Unlock()
	for i := range ports {
		if ports[i].Load() == nil {
			ports[i].Store(&slot{dev: dev})
			return PortID(i), nil
		}
	}
	return 0, api.ErrPortTableFull
}

// Detach removes the device from the table and returns it. The caller is
// responsible for closing it; in-flight workers must have stopped polling.
func Detach(port PortID) (Device, error) {
	attachMu.Lock()
	defer attachMu.Unlock()
	if int(port) >= len(ports) {
		return nil, api.ErrInvalidArgument
	}
	s := ports[port].Load()
	if s == nil {
		return nil, api.ErrPortNotAttached
	}
	ports[port].Store(nil)
	return s.dev, nil
}

// Lookup resolves an attached device.
func Lookup(port PortID) (Device, error) {
	if int(port) >= len(ports) {
		return nil, api.ErrInvalidArgument
	}
	s := ports[port].Load()
	if s == nil {
		return nil, api.ErrPortNotAttached
	}
	return s.dev, nil
}

// RxBurst polls the port once, filling out with at most len(out) buffers.
// Unknown ports receive nothing.
func RxBurst(port PortID, queue QueueID, out []pktmbuf.Mbuf) int {
	if int(port) >= len(ports) {
		return 0
	}
	s := ports[port].Load()
	if s == nil {
		return 0
	}
	return s.dev.RxBurst(queue, out)
}

// TxBurst hands bufs to the port and returns the accepted count.
// Unknown ports accept nothing; the caller keeps every buffer.
func TxBurst(port PortID, queue QueueID, bufs []pktmbuf.Mbuf) int {
	if int(port) >= len(ports) {
		return 0
	}
	s := ports[port].Load()
	if s == nil {
		return 0
	}
	return s.dev.TxBurst(queue, bufs)
}

// RxQueue is a bound handle for one receive queue.
type RxQueue struct {
	Port  PortID
	Queue QueueID
}

// Burst fills out with up to len(out) buffers from this queue.
func (q RxQueue) Burst(out []pktmbuf.Mbuf) int {
	return RxBurst(q.Port, q.Queue, out)
}

// BurstBatch appends received buffers to b up to its remaining capacity.
func (q RxQueue) BurstBatch(b *pktmbuf.Batch) int {
	room := b.Cap() - b.Len()
	if room <= 0 {
		return 0
	}
	region := b.Extend(room)
	n := q.Burst(region)
	b.Shrink(room - n)
	return n
}

// TxQueue is a bound handle for one transmit queue.
type TxQueue struct {
	Port  PortID
	Queue QueueID
}

// Burst hands bufs to this queue and returns the accepted count.
func (q TxQueue) Burst(bufs []pktmbuf.Mbuf) int {
	return TxBurst(q.Port, q.Queue, bufs)
}

// BurstBatch transmits b's contents and drops the accepted prefix from the
// batch, leaving only buffers the caller still owns.
func (q TxQueue) BurstBatch(b *pktmbuf.Batch) int {
	n := q.Burst(b.Slice())
	b.Drop(n)
	return n
}
