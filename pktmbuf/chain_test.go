package pktmbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-pkt/api"
)

func buildChain(t *testing.T, p *Pool, segLens ...int) Mbuf {
	t.Helper()
	head, err := p.Alloc()
	require.NoError(t, err)
	_, err = head.Append(segLens[0])
	require.NoError(t, err)
	for _, n := range segLens[1:] {
		seg, err := p.Alloc()
		require.NoError(t, err)
		_, err = seg.Append(n)
		require.NoError(t, err)
		require.NoError(t, head.Chain(seg))
	}
	return head
}

func TestChainPktLenIsSumOfDataLens(t *testing.T) {
	p := newTestPool(t, 4)
	head := buildChain(t, p, 100, 200, 300)

	assert.Equal(t, 3, head.NumSegments())
	assert.Equal(t, 600, head.PktLen())
	assert.Equal(t, 100, head.DataLen())

	sum := 0
	for m, ok := head, true; ok; m, ok = m.Next() {
		sum += m.DataLen()
	}
	assert.Equal(t, head.PktLen(), sum)
}

func TestChainAppendGoesToLastSegment(t *testing.T) {
	p := newTestPool(t, 2)
	head := buildChain(t, p, 100, 200)

	last := head.LastSegment()
	lastTail := last.Tailroom()
	_, err := head.Append(50)
	require.NoError(t, err)

	assert.Equal(t, 250, last.DataLen())
	assert.Equal(t, lastTail-50, last.Tailroom())
	assert.Equal(t, 100, head.DataLen())
	assert.Equal(t, 350, head.PktLen())
}

func TestChainTrimComesOffLastSegment(t *testing.T) {
	p := newTestPool(t, 2)
	head := buildChain(t, p, 100, 40)

	require.NoError(t, head.Trim(30))
	assert.Equal(t, 10, head.LastSegment().DataLen())
	assert.Equal(t, 110, head.PktLen())

	// Trim is bounded by the last segment's data_len.
	assert.ErrorIs(t, head.Trim(11), api.ErrInvalidLength)
}

func TestChainAdjComesOffFirstSegment(t *testing.T) {
	p := newTestPool(t, 2)
	head := buildChain(t, p, 100, 200)

	require.NoError(t, head.Adj(60))
	assert.Equal(t, 40, head.DataLen())
	assert.Equal(t, 240, head.PktLen())
	assert.ErrorIs(t, head.Adj(41), api.ErrInvalidLength)
}

func TestSegmentIndexing(t *testing.T) {
	p := newTestPool(t, 3)
	head := buildChain(t, p, 10, 20, 30)

	s1, err := head.Segment(1)
	require.NoError(t, err)
	assert.Equal(t, 20, s1.DataLen())

	_, err = head.Segment(3)
	assert.Error(t, err)

	_, err = head.Segment(-1)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
}

func TestFreeReleasesWholeChain(t *testing.T) {
	p := newTestPool(t, 3)
	head := buildChain(t, p, 10, 20, 30)
	assert.Equal(t, 0, p.AvailCount())

	require.NoError(t, head.Free())
	assert.Equal(t, 3, p.AvailCount())
}

func TestResetFreesTrailingSegments(t *testing.T) {
	p := newTestPool(t, 3)
	head := buildChain(t, p, 10, 20, 30)

	require.NoError(t, head.Reset())
	assert.Equal(t, 2, p.AvailCount())
	assert.Equal(t, 0, head.DataLen())
	assert.Equal(t, 0, head.PktLen())
	assert.Equal(t, 1, head.NumSegments())
	assert.Equal(t, p.DefaultHeadroom(), head.Headroom())
}

func TestChainRejectsForeignPoolAndSelf(t *testing.T) {
	p1 := newTestPool(t, 2)
	p2 := newTestPool(t, 1)

	a, err := p1.Alloc()
	require.NoError(t, err)
	b, err := p2.Alloc()
	require.NoError(t, err)

	assert.Error(t, a.Chain(b))
	assert.Error(t, a.Chain(a))
}
