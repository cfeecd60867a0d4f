package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bmst/unionfind"
)

func TestUnionAndFind(t *testing.T) {
	d := unionfind.New(5)
	require.Equal(t, 5, d.Sets())
	require.Equal(t, 5, d.Len())

	assert.True(t, d.Union(0, 1))
	assert.True(t, d.Union(3, 4))
	assert.False(t, d.Union(1, 0), "already merged")
	assert.Equal(t, 3, d.Sets())

	assert.True(t, d.Connected(0, 1))
	assert.False(t, d.Connected(1, 3))

	assert.True(t, d.Union(1, 4))
	assert.True(t, d.Connected(0, 3))
	assert.Equal(t, 2, d.Sets())
}

func TestLinkKeepsParentRoot(t *testing.T) {
	// chain 4 → 3 → 2 → 1 → 0 contracted bottom-up, as the ancestor walk does
	d := unionfind.New(5)
	for child := 4; child > 0; child-- {
		require.True(t, d.Link(child, child-1))
		assert.Equal(t, child-1, d.Find(child))
	}
	for x := 0; x < 5; x++ {
		assert.Equal(t, 0, d.Find(x))
	}
	assert.False(t, d.Link(4, 0))
	assert.Equal(t, 1, d.Sets())
}

func TestLinkAfterUnion(t *testing.T) {
	d := unionfind.New(4)
	d.Link(1, 2)
	d.Link(3, 2)
	require.Equal(t, 2, d.Find(1))
	require.Equal(t, 2, d.Find(3))

	d.Link(2, 0)
	assert.Equal(t, 0, d.Find(3))
	assert.Equal(t, 0, d.Find(1))
}
