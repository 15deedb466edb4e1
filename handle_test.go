package vectormap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleInvalidation(t *testing.T) {
	mutations := map[string]func(m *VectorMap[string, int]){
		"Insert":   func(m *VectorMap[string, int]) { _, _ = m.PushBack("Diez", 10) },
		"Erase":    func(m *VectorMap[string, int]) { m.Erase(0) },
		"EraseAll": func(m *VectorMap[string, int]) { m.EraseAll("Dos") },
		"Swap":     func(m *VectorMap[string, int]) { _ = m.Swap(0, 1) },
		"Move":     func(m *VectorMap[string, int]) { _ = m.Move(0, 1) },
		"Clear":    func(m *VectorMap[string, int]) { m.Clear() },
		"Reserve":  func(m *VectorMap[string, int]) { _ = m.Reserve(40) },
		"Shrink":   func(m *VectorMap[string, int]) { _ = m.Shrink() },
		"Free":     func(m *VectorMap[string, int]) { m.Free() },
		"Take":     func(m *VectorMap[string, int]) { m.Take() },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			n := accessFixture(t)
			h, _ := n.Find("Dos")
			require.True(t, h.Valid())

			mutate(n)

			assert.True(t, h.Stale())
			assert.False(t, h.Valid())

			_, err := h.Entry()
			assert.ErrorIs(t, err, ErrStaleHandle)
			assert.ErrorIs(t, h.SetValue(1), ErrStaleHandle)
		})
	}
}

func TestHandleSurvivesReads(t *testing.T) {
	n := accessFixture(t)
	h, _ := n.Find("Dos")

	n.Find("Tres")
	n.FindAll("Dos")
	_, _ = n.At(3)
	_ = n.Data()
	_, _ = n.Clone()
	_ = n.Reserve(3) // rejected

	assert.False(t, h.Stale())
	assertHandle(t, h, "Dos", 2)
}

func TestHandleSetValue(t *testing.T) {
	n := accessFixture(t)
	h, _ := n.FindNth("Dos", 2)

	require.NoError(t, h.SetValue(44))

	v, ok := n.ValueNth("Dos", 2)
	assert.True(t, ok)
	assert.Equal(t, 44, v)

	// Writing a value keeps other handles valid.
	k, err := h.Key()
	require.NoError(t, err)
	assert.Equal(t, "Dos", k)

	require.ErrorIs(t, n.End().SetValue(1), ErrOutOfRange)
}

func TestHandleNavigation(t *testing.T) {
	n := newNumerals(t, 3)

	var keys []string
	for h := n.Begin(); !h.IsEnd(); h = h.Next() {
		k, err := h.Key()
		require.NoError(t, err)
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"Cero", "Uno", "Dos"}, keys)

	var values []int
	for h := n.Last(); h.Valid(); h = h.Prev() {
		v, err := h.Value()
		require.NoError(t, err)
		values = append(values, v)
	}
	assert.Equal(t, []int{2, 1, 0}, values)

	assert.True(t, n.Begin().Equal(n.Last().Prev().Prev()))
	assert.True(t, n.End().Equal(n.Last().Next()))
	assert.False(t, n.Begin().Equal(n.End()))
}

func TestHandleEmptyMap(t *testing.T) {
	m, err := New[string, int]()
	require.NoError(t, err)

	assert.True(t, m.Begin().Equal(m.End()))
	assert.True(t, m.Begin().IsEnd())
	assert.False(t, m.Last().Valid())

	_, err = m.Last().Entry()
	assert.ErrorIs(t, err, ErrOutOfRange)

	var zero Handle[string, int]
	assert.True(t, zero.Stale())
	assert.False(t, zero.Valid())
	assert.False(t, zero.IsEnd())
	_, err = zero.Entry()
	assert.ErrorIs(t, err, ErrStaleHandle)
}
