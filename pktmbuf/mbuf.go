// File: pktmbuf/mbuf.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mbuf handle and the in-place editor operations. Every operation is O(1)
// offset arithmetic over the pool slab; payload bytes never move. The
// invariant headroom + data_len + tailroom == capacity holds for every
// segment after every operation, and pkt_len in the head segment is the
// sum of data_len over the chain.

package pktmbuf

import "github.com/momentics/hioload-pkt/api"

// Mbuf is a handle to one packet buffer segment. It is a small value:
// copying the handle does not copy or share-count the buffer. The segment
// has exactly one owner at a time; handing an Mbuf to TxBurst or Free
// transfers or ends that ownership.
type Mbuf struct {
	pool *Pool
	idx  uint32
	gen  uint32
}

// Valid reports whether the handle still refers to a live allocation.
func (m Mbuf) Valid() bool {
	return m.pool != nil && m.pool.segs[m.idx].gen == m.gen
}

// Pool returns the originating pool.
func (m Mbuf) Pool() *Pool { return m.pool }

// seg resolves the metadata record, rejecting stale handles.
func (m Mbuf) seg() (*segment, error) {
	if m.pool == nil {
		return nil, api.ErrInvalidArgument
	}
	seg := &m.pool.segs[m.idx]
	if seg.gen != m.gen {
		return nil, api.ErrBufferReleased
	}
	return seg, nil
}

// Free returns the buffer and its whole chain to the originating pool.
func (m Mbuf) Free() error {
	if m.pool == nil {
		return api.ErrInvalidArgument
	}
	return m.pool.Free(m)
}

// Data returns the valid bytes of this segment as a mutable view into the
// pool slab. The view is invalidated by Free, Reset, Adj and Prepend.
func (m Mbuf) Data() []byte {
	seg := &m.pool.segs[m.idx]
	base := m.pool.base(m.idx)
	return m.pool.slab[base+int(seg.dataOff) : base+int(seg.dataOff)+int(seg.dataLen)]
}

// Copy returns a standalone copy of this segment's valid bytes.
func (m Mbuf) Copy() []byte {
	src := m.Data()
	out := make([]byte, len(src))
	copy(out, src)
	return out
}

// Headroom returns the unused space before valid data.
func (m Mbuf) Headroom() int {
	return int(m.pool.segs[m.idx].dataOff)
}

// Tailroom returns the unused space after valid data in this segment.
func (m Mbuf) Tailroom() int {
	seg := &m.pool.segs[m.idx]
	return m.pool.dataRoom - int(seg.dataOff) - int(seg.dataLen)
}

// DataLen returns the valid bytes in this segment.
func (m Mbuf) DataLen() int {
	return int(m.pool.segs[m.idx].dataLen)
}

// PktLen returns the total valid bytes across the segment chain.
func (m Mbuf) PktLen() int {
	return int(m.pool.segs[m.idx].pktLen)
}

// Capacity returns the fixed total capacity of one segment.
func (m Mbuf) Capacity() int { return m.pool.dataRoom }

// Append grows the packet by n bytes at the tail of the last segment and
// returns the appended region for the caller to populate. The buffer is
// untouched when tailroom is insufficient.
func (m Mbuf) Append(n int) ([]byte, error) {
	head, err := m.seg()
	if err != nil {
		return nil, err
	}
	lastIdx, last := m.pool.lastSeg(m.idx)
	if n < 0 || n > m.pool.dataRoom-int(last.dataOff)-int(last.dataLen) {
		return nil, api.ErrInsufficientTailroom
	}
	base := m.pool.base(lastIdx)
	tail := base + int(last.dataOff) + int(last.dataLen)
	last.dataLen += uint32(n)
	head.pktLen += uint32(n)
	return m.pool.slab[tail : tail+n], nil
}

// Prepend grows the packet by n bytes before the current data start,
// consuming headroom, and returns the new front region.
func (m Mbuf) Prepend(n int) ([]byte, error) {
	seg, err := m.seg()
	if err != nil {
		return nil, err
	}
	if n < 0 || n > int(seg.dataOff) {
		return nil, api.ErrInsufficientHeadroom
	}
	seg.dataOff -= uint32(n)
	seg.dataLen += uint32(n)
	seg.pktLen += uint32(n)
	base := m.pool.base(m.idx)
	front := base + int(seg.dataOff)
	return m.pool.slab[front : front+n], nil
}

// Adj strips n bytes from the front of the first segment; headroom grows.
func (m Mbuf) Adj(n int) error {
	seg, err := m.seg()
	if err != nil {
		return err
	}
	if n < 0 || n > int(seg.dataLen) {
		return api.ErrInvalidLength
	}
	seg.dataOff += uint32(n)
	seg.dataLen -= uint32(n)
	seg.pktLen -= uint32(n)
	return nil
}

// Trim strips n bytes from the tail of the last segment.
func (m Mbuf) Trim(n int) error {
	head, err := m.seg()
	if err != nil {
		return err
	}
	_, last := m.pool.lastSeg(m.idx)
	if n < 0 || n > int(last.dataLen) {
		return api.ErrInvalidLength
	}
	last.dataLen -= uint32(n)
	head.pktLen -= uint32(n)
	return nil
}

// Reset restores the buffer to its freshly allocated state: empty, default
// headroom, and any chained segments past the first returned to the pool.
func (m Mbuf) Reset() error {
	seg, err := m.seg()
	if err != nil {
		return err
	}
	if seg.next != 0 {
		nextIdx := seg.next - 1
		m.pool.freeChain(nextIdx, &m.pool.segs[nextIdx])
	}
	seg.dataOff = uint32(m.pool.headroom)
	seg.dataLen = 0
	seg.pktLen = 0
	seg.nbSegs = 1
	seg.next = 0
	return nil
}

// WriteData resets the buffer and fills it with p.
func (m Mbuf) WriteData(p []byte) error {
	if err := m.Reset(); err != nil {
		return err
	}
	dst, err := m.Append(len(p))
	if err != nil {
		return err
	}
	copy(dst, p)
	return nil
}

// SetDataLen overwrites data_len without bounds validation. Receive path
// only, immediately after a hardware fill: the caller must guarantee
// headroom + n does not exceed capacity.
func (m Mbuf) SetDataLen(n int) {
	m.pool.segs[m.idx].dataLen = uint32(n)
}

// SetPktLen overwrites pkt_len without bounds validation. Same contract
// as SetDataLen.
func (m Mbuf) SetPktLen(n int) {
	m.pool.segs[m.idx].pktLen = uint32(n)
}

// RSSHash returns the receive-side hash carried with the buffer.
func (m Mbuf) RSSHash() uint32 {
	return m.pool.segs[m.idx].rssHash
}

// SetRSSHash stores the receive-side hash. Opaque pass-through.
func (m Mbuf) SetRSSHash(h uint32) {
	m.pool.segs[m.idx].rssHash = h
}

// HashFlags returns the RSS hash-type flag bits.
func (m Mbuf) HashFlags() uint64 {
	return m.pool.segs[m.idx].hashFlags
}

// SetHashFlags stores RSS hash-type flag bits. Opaque pass-through.
func (m Mbuf) SetHashFlags(f uint64) {
	m.pool.segs[m.idx].hashFlags = f
}
