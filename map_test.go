package flathash_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daskie/qc-hash-go"
)

func TestMapPutGetAt(t *testing.T) {
	m := flathash.NewIntMap[string]()
	m.Put(1, "one")
	m.Put(2, "two")

	v, ok := m.Get(1)
	require.True(t, ok)
	require.Equal(t, "one", v)

	v, err := m.At(2)
	require.NoError(t, err)
	require.Equal(t, "two", v)

	_, err = m.At(3)
	require.ErrorIs(t, err, flathash.ErrKeyNotFound)
}

func TestMapPutOverwritesExisting(t *testing.T) {
	m := flathash.NewIntMap[int]()
	inserted := m.Put(1, 10)
	require.True(t, inserted)
	inserted = m.Put(1, 20)
	require.False(t, inserted)

	v, _ := m.Get(1)
	require.Equal(t, 20, v)
	require.Equal(t, 1, m.Len())
}

func TestMapGetOrInsertDefaultConstructs(t *testing.T) {
	m := flathash.NewStringMap[int]()
	v, inserted := m.GetOrInsert("counter")
	require.True(t, inserted)
	require.Equal(t, 0, *v)
	*v++
	*v++

	v2, inserted2 := m.GetOrInsert("counter")
	require.False(t, inserted2)
	require.Equal(t, 2, *v2)
}

func TestMapGetOrPutTryEmplaceSemantics(t *testing.T) {
	m := flathash.NewIntMap[string]()
	got, existed := m.GetOrPut(1, "first")
	require.False(t, existed)
	require.Equal(t, "first", got)

	got, existed = m.GetOrPut(1, "second")
	require.True(t, existed)
	require.Equal(t, "first", got, "GetOrPut must not overwrite an existing value")
}

func TestMapEraseAndFind(t *testing.T) {
	m := flathash.NewIntMap[int]()
	for i := 0; i < 10; i++ {
		m.Put(i, i*i)
	}
	require.True(t, m.Erase(5))
	require.False(t, m.Erase(5))
	require.True(t, m.Find(5).Done())

	it := m.Find(6)
	require.False(t, it.Done())
	require.Equal(t, 36, it.Value())
}

func TestMapEachVisitsAllEntries(t *testing.T) {
	m := flathash.NewIntMap[int]()
	want := map[int]int{}
	for i := 0; i < 50; i++ {
		m.Put(i, i*2)
		want[i] = i * 2
	}
	got := map[int]int{}
	m.Each(func(k, v int) { got[k] = v })
	require.Equal(t, want, got)
}

func TestMapAtErrorIsWrappable(t *testing.T) {
	m := flathash.NewIntMap[int]()
	_, err := m.At(0)
	require.True(t, errors.Is(err, flathash.ErrKeyNotFound))
}

func TestMapCloneIndependence(t *testing.T) {
	m := flathash.NewIntMap[int]()
	m.Put(1, 1)
	c := m.Clone()
	c.Put(2, 2)
	require.Equal(t, 1, m.Len())
	require.Equal(t, 2, c.Len())
}

func TestMapEqualRange(t *testing.T) {
	m := flathash.NewIntMap[string]()
	m.Put(1, "one")
	m.Put(2, "two")

	first, last := m.EqualRange(1)
	require.False(t, first.Done())
	require.Equal(t, "one", first.Value())
	require.Equal(t, first.Next(), last)

	missFirst, missLast := m.EqualRange(99)
	require.Equal(t, m.End(), missFirst)
	require.Equal(t, missFirst, missLast)
}

func TestMapEraseRangeRemovesHalfOpenSpan(t *testing.T) {
	m := flathash.NewIntMap[int]()
	for i := 0; i < 32; i++ {
		m.Put(i, i)
	}

	begin := m.Begin()
	first, _ := m.EqualRange(begin.Key())
	removed := m.EraseRange(first, first.Next())
	require.Equal(t, 1, removed)
	require.Equal(t, 31, m.Len())
	require.False(t, m.Contains(first.Key()))
}
