// File: pktmbuf/chain.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Multi-segment chaining. The owning link is an arena index stored in the
// segment record, so a chain can never dangle or form a cycle through
// stale pointers. pkt_len and nb_segs live in the head segment only.

package pktmbuf

import "github.com/momentics/hioload-pkt/api"

// lastSeg walks to the final segment of the chain starting at idx.
func (p *Pool) lastSeg(idx uint32) (uint32, *segment) {
	seg := &p.segs[idx]
	for seg.next != 0 {
		idx = seg.next - 1
		seg = &p.segs[idx]
	}
	return idx, seg
}

// NumSegments returns the number of segments in the chain.
func (m Mbuf) NumSegments() int {
	return int(m.pool.segs[m.idx].nbSegs)
}

// Next returns the segment chained after this one, if any.
func (m Mbuf) Next() (Mbuf, bool) {
	seg := &m.pool.segs[m.idx]
	if seg.next == 0 {
		return Mbuf{}, false
	}
	idx := seg.next - 1
	return Mbuf{pool: m.pool, idx: idx, gen: m.pool.segs[idx].gen}, true
}

// LastSegment returns the tail segment of the chain.
func (m Mbuf) LastSegment() Mbuf {
	idx, seg := m.pool.lastSeg(m.idx)
	return Mbuf{pool: m.pool, idx: idx, gen: seg.gen}
}

// Segment returns the i-th segment of the chain.
func (m Mbuf) Segment(i int) (Mbuf, error) {
	if i < 0 {
		return Mbuf{}, api.ErrInvalidArgument
	}
	cur := m
	for ; i > 0; i-- {
		next, ok := cur.Next()
		if !ok {
			return Mbuf{}, api.ErrInvalidArgument
		}
		cur = next
	}
	return cur, nil
}

// Chain appends tail's chain to m. Ownership of tail moves into the chain:
// from here on the packet is freed and accounted through m. Both buffers
// must come from the same pool.
func (m Mbuf) Chain(tail Mbuf) error {
	head, err := m.seg()
	if err != nil {
		return err
	}
	tseg, err := tail.seg()
	if err != nil {
		return err
	}
	if tail.pool != m.pool {
		return api.ErrInvalidArgument
	}
	if int(head.nbSegs)+int(tseg.nbSegs) > api.MaxChainSegments {
		return api.ErrTooManySegments
	}

	lastIdx, last := m.pool.lastSeg(m.idx)
	if lastIdx == tail.idx || m.idx == tail.idx {
		return api.ErrInvalidArgument
	}
	last.next = tail.idx + 1
	head.pktLen += tseg.pktLen
	head.nbSegs += tseg.nbSegs
	// tail is no longer a chain head; its head-only fields are retired.
	tseg.pktLen = 0
	tseg.nbSegs = 1
	return nil
}
