package pktmbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchDropKeepsOrder(t *testing.T) {
	p := newTestPool(t, 4)
	b := NewBatch(4)
	require.Equal(t, 4, p.AllocBatch(b))

	second := b.Get(1)
	b.Drop(1)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, second, b.Get(0))

	b.Drop(10)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 4, b.Cap())
}

func TestBatchExtendShrink(t *testing.T) {
	p := newTestPool(t, 2)
	b := NewBatch(8)
	require.Equal(t, 2, p.AllocBatch(b))

	region := b.Extend(6)
	assert.Len(t, region, 6)
	assert.Equal(t, 8, b.Len())

	b.Shrink(6)
	assert.Equal(t, 2, b.Len())
	assert.True(t, b.Get(0).Valid())
}
