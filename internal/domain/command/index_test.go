package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustDescriptor(t *testing.T, kind Kind, key, agent string) *Descriptor {
	t.Helper()
	d, err := NewBuilder(kind).Key(key).Agent(agent).Build()
	require.NoError(t, err)
	return d
}

func TestIndex_PutAndLookup(t *testing.T) {
	x := NewIndex()
	prev, err := x.Put(mustDescriptor(t, KindDirect, "genesis", "GENESIS"))
	require.NoError(t, err)
	require.Nil(t, prev)

	d, ok := x.Lookup("genesis")
	require.True(t, ok)
	require.Equal(t, "GENESIS", d.Agent())
	require.Equal(t, 1, x.Len())
}

func TestIndex_Get_NotFound(t *testing.T) {
	_, err := NewIndex().Get("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIndex_Put_Nil(t *testing.T) {
	_, err := NewIndex().Put(nil)
	require.ErrorIs(t, err, ErrNilDescriptor)
}

func TestIndex_ReplaceKeepsPosition(t *testing.T) {
	x := NewIndex()
	_, _ = x.Put(mustDescriptor(t, KindDirect, "a", "A1"))
	_, _ = x.Put(mustDescriptor(t, KindDirect, "b", "B"))
	prev, err := x.Put(mustDescriptor(t, KindWorkflow, "a", "A2"))
	require.NoError(t, err)
	require.Equal(t, "A1", prev.Agent())

	require.Equal(t, []string{"a", "b"}, x.Keys())
	descs := x.Descriptors()
	require.Equal(t, "A2", descs[0].Agent())
	require.Equal(t, 2, x.Len())
}
