package pktmbuf

import (
	"bytes"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-pkt/api"
)

func TestAppendConsumesTailroom(t *testing.T) {
	p := newTestPool(t, 1)
	m, err := p.Alloc()
	require.NoError(t, err)

	before := m.Tailroom()
	region, err := m.Append(400)
	require.NoError(t, err)
	require.Len(t, region, 400)

	assert.Equal(t, 400, m.DataLen())
	assert.Equal(t, 400, m.PktLen())
	assert.Equal(t, before-400, m.Tailroom())
	assert.Equal(t, 128, m.Headroom())

	// The returned region is the tail of the data view.
	copy(region, bytes.Repeat([]byte{0xAB}, 400))
	assert.Equal(t, byte(0xAB), m.Data()[399])
}

func TestAppendBeyondTailroomLeavesBufferUnmodified(t *testing.T) {
	p := newTestPool(t, 1)
	m, err := p.Alloc()
	require.NoError(t, err)
	region, err := m.Append(100)
	require.NoError(t, err)
	copy(region, bytes.Repeat([]byte{0x5A}, 100))

	hr, tr, dl, pl := m.Headroom(), m.Tailroom(), m.DataLen(), m.PktLen()
	snapshot := m.Copy()

	_, err = m.Append(m.Tailroom() + 1)
	assert.ErrorIs(t, err, api.ErrInsufficientTailroom)

	assert.Equal(t, hr, m.Headroom())
	assert.Equal(t, tr, m.Tailroom())
	assert.Equal(t, dl, m.DataLen())
	assert.Equal(t, pl, m.PktLen())
	assert.Equal(t, snapshot, m.Copy())
}

func TestEditorRejectsLengthsBeyondUint32(t *testing.T) {
	if bits.UintSize == 32 {
		t.Skip("requires 64-bit int")
	}
	p := newTestPool(t, 1)
	m, err := p.Alloc()
	require.NoError(t, err)
	_, err = m.Append(100)
	require.NoError(t, err)

	// Lengths whose low 32 bits look small must not slip past the
	// bounds checks through metadata-width truncation.
	shift := uint(32)
	huge := 1<<shift + 5

	_, err = m.Prepend(huge)
	assert.ErrorIs(t, err, api.ErrInsufficientHeadroom)
	assert.ErrorIs(t, m.Adj(huge), api.ErrInvalidLength)
	assert.ErrorIs(t, m.Trim(huge), api.ErrInvalidLength)
	_, err = m.Append(huge)
	assert.ErrorIs(t, err, api.ErrInsufficientTailroom)

	assert.Equal(t, 128, m.Headroom())
	assert.Equal(t, 100, m.DataLen())
	assert.Equal(t, 100, m.PktLen())
}

func TestPrependConsumesHeadroom(t *testing.T) {
	p := newTestPool(t, 1)
	m, err := p.Alloc()
	require.NoError(t, err)

	region, err := m.Prepend(64)
	require.NoError(t, err)
	require.Len(t, region, 64)
	assert.Equal(t, 64, m.Headroom())
	assert.Equal(t, 64, m.DataLen())
	assert.Equal(t, 64, m.PktLen())

	_, err = m.Prepend(65)
	assert.ErrorIs(t, err, api.ErrInsufficientHeadroom)
}

func TestAdjAndTrim(t *testing.T) {
	p := newTestPool(t, 1)
	m, err := p.Alloc()
	require.NoError(t, err)
	_, err = m.Append(200)
	require.NoError(t, err)

	require.NoError(t, m.Adj(50))
	assert.Equal(t, 150, m.DataLen())
	assert.Equal(t, 178, m.Headroom())

	require.NoError(t, m.Trim(50))
	assert.Equal(t, 100, m.DataLen())
	assert.Equal(t, 100, m.PktLen())

	assert.ErrorIs(t, m.Adj(101), api.ErrInvalidLength)
	assert.ErrorIs(t, m.Trim(101), api.ErrInvalidLength)
}

func TestAppendTrimRoundTrip(t *testing.T) {
	p := newTestPool(t, 1)
	m, err := p.Alloc()
	require.NoError(t, err)
	_, err = m.Append(128)
	require.NoError(t, err)

	dl, tr := m.DataLen(), m.Tailroom()
	_, err = m.Append(512)
	require.NoError(t, err)
	require.NoError(t, m.Trim(512))

	assert.Equal(t, dl, m.DataLen())
	assert.Equal(t, tr, m.Tailroom())
}

func TestAdjFullThenResetEqualsReset(t *testing.T) {
	p := newTestPool(t, 2)

	a, err := p.Alloc()
	require.NoError(t, err)
	_, err = a.Append(300)
	require.NoError(t, err)
	require.NoError(t, a.Adj(a.DataLen()))
	require.NoError(t, a.Reset())

	b, err := p.Alloc()
	require.NoError(t, err)
	_, err = b.Append(300)
	require.NoError(t, err)
	require.NoError(t, b.Reset())

	assert.Equal(t, b.Headroom(), a.Headroom())
	assert.Equal(t, b.DataLen(), a.DataLen())
	assert.Equal(t, b.PktLen(), a.PktLen())
	assert.Equal(t, b.Tailroom(), a.Tailroom())
}

// Walk-through: capacity 2048, default headroom 128.
func TestEditorScenario(t *testing.T) {
	p := newTestPool(t, 1)
	m, err := p.Alloc()
	require.NoError(t, err)
	assert.Equal(t, 1920, m.Tailroom())

	_, err = m.Append(400)
	require.NoError(t, err)
	assert.Equal(t, 400, m.DataLen())
	assert.Equal(t, 1520, m.Tailroom())

	_, err = m.Prepend(64)
	require.NoError(t, err)
	assert.Equal(t, 64, m.Headroom())
	assert.Equal(t, 464, m.DataLen())

	require.NoError(t, m.Trim(100))
	assert.Equal(t, 364, m.DataLen())
}

func TestInvariantHeadroomDataTailroom(t *testing.T) {
	p := newTestPool(t, 1)
	m, err := p.Alloc()
	require.NoError(t, err)

	check := func() {
		assert.Equal(t, m.Capacity(), m.Headroom()+m.DataLen()+m.Tailroom())
	}
	check()
	_, err = m.Append(777)
	require.NoError(t, err)
	check()
	_, err = m.Prepend(33)
	require.NoError(t, err)
	check()
	require.NoError(t, m.Adj(100))
	check()
	require.NoError(t, m.Trim(1))
	check()
	require.NoError(t, m.Reset())
	check()
}

func TestUncheckedSetters(t *testing.T) {
	p := newTestPool(t, 1)
	m, err := p.Alloc()
	require.NoError(t, err)

	m.SetDataLen(1400)
	m.SetPktLen(1400)
	assert.Equal(t, 1400, m.DataLen())
	assert.Equal(t, 1400, m.PktLen())
	assert.Equal(t, 2048-128-1400, m.Tailroom())
}

func TestWriteData(t *testing.T) {
	p := newTestPool(t, 1)
	m, err := p.Alloc()
	require.NoError(t, err)

	payload := []byte("burst payload")
	require.NoError(t, m.WriteData(payload))
	assert.Equal(t, payload, m.Data())
	assert.Equal(t, len(payload), m.PktLen())

	// WriteData resets first; a second write replaces, not appends.
	require.NoError(t, m.WriteData([]byte("x")))
	assert.Equal(t, 1, m.DataLen())
}

func TestRSSPassThrough(t *testing.T) {
	p := newTestPool(t, 1)
	m, err := p.Alloc()
	require.NoError(t, err)

	m.SetRSSHash(0xdeadbeef)
	m.SetHashFlags(api.RSSIPv4 | api.RSSNonFragIPv4TCP)
	assert.Equal(t, uint32(0xdeadbeef), m.RSSHash())
	assert.Equal(t, api.RSSIPv4|api.RSSNonFragIPv4TCP, m.HashFlags())

	// Cleared on the next allocation of the same buffer.
	require.NoError(t, m.Free())
	m2, err := p.Alloc()
	require.NoError(t, err)
	assert.Zero(t, m2.RSSHash())
	assert.Zero(t, m2.HashFlags())
}
