// Package pktmbuf provides zero-alloc batching over Mbuf handles.
//
// Batch accumulates mbufs for burst I/O. Designed for single-goroutine
// use; no locks for minimal overhead.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pktmbuf

import "github.com/momentics/hioload-pkt/api"

// Batch holds a slice of mbufs for burst reception or transmission.
type Batch struct {
	mbufs []Mbuf
}

// NewBatch creates a batch with fixed capacity cap.
func NewBatch(cap int) *Batch {
	return &Batch{mbufs: make([]Mbuf, 0, cap)}
}

// Append adds m to the batch.
func (b *Batch) Append(m Mbuf) {
	b.mbufs = append(b.mbufs, m)
}

// Len reports current batch size.
func (b *Batch) Len() int {
	return len(b.mbufs)
}

// Cap reports batch capacity.
func (b *Batch) Cap() int {
	return cap(b.mbufs)
}

// Get returns the i-th mbuf.
func (b *Batch) Get(i int) Mbuf {
	return b.mbufs[i]
}

// Slice returns the raw slice for burst calls.
func (b *Batch) Slice() []Mbuf {
	return b.mbufs
}

// Drop removes the first n mbufs, keeping the rest in order. Used after a
// partial tx acceptance to retain only the still-owned buffers.
func (b *Batch) Drop(n int) {
	if n <= 0 {
		return
	}
	if n >= len(b.mbufs) {
		b.mbufs = b.mbufs[:0]
		return
	}
	rem := copy(b.mbufs, b.mbufs[n:])
	b.mbufs = b.mbufs[:rem]
}

// Extend grows the batch by n empty handle slots and returns the new
// region for a burst call to fill. n must not exceed Cap()-Len().
func (b *Batch) Extend(n int) []Mbuf {
	old := len(b.mbufs)
	b.mbufs = b.mbufs[:old+n]
	return b.mbufs[old:]
}

// Shrink discards the last n entries.
func (b *Batch) Shrink(n int) {
	if n <= 0 {
		return
	}
	if n > len(b.mbufs) {
		n = len(b.mbufs)
	}
	b.mbufs = b.mbufs[:len(b.mbufs)-n]
}

// Reset clears the batch but retains capacity.
func (b *Batch) Reset() {
	b.mbufs = b.mbufs[:0]
}

// FreeAll returns every batched mbuf to its pool and clears the batch.
func (b *Batch) FreeAll() {
	for _, m := range b.mbufs {
		_ = m.Free()
	}
	b.mbufs = b.mbufs[:0]
}

var _ api.Batch[Mbuf] = (*Batch)(nil)
