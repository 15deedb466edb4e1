package vectormap

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := newNumerals(t, 4, WithLogger(logger))
	require.NoError(t, m.Reserve(10))
	require.Error(t, m.Reserve(2))
	require.NoError(t, m.Shrink())

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}

	require.Len(t, records, 4)

	assert.Equal(t, "buffer grown", records[0]["msg"])
	assert.EqualValues(t, 3, records[0]["delta"])
	assert.EqualValues(t, 0, records[0]["old_capacity"])
	assert.EqualValues(t, 6, records[0]["new_capacity"])

	assert.Equal(t, "buffer grown", records[1]["msg"])
	assert.EqualValues(t, 12, records[1]["new_capacity"])
	assert.EqualValues(t, 4, records[1]["size"])

	assert.Equal(t, "capacity request rejected", records[2]["msg"])
	assert.Equal(t, "WARN", records[2]["level"])
	assert.EqualValues(t, 2, records[2]["requested"])

	assert.Equal(t, "buffer shrunk", records[3]["msg"])
	assert.EqualValues(t, 4, records[3]["new_capacity"])

	t.Run("AllocationFailed", func(t *testing.T) {
		buf.Reset()
		m, err := FromEntries(numerals(2), WithLogger(logger), WithMemoryLimit(1))
		require.ErrorIs(t, err, ErrAllocationFailed)
		assert.Nil(t, m)
		assert.Contains(t, buf.String(), `"msg":"buffer allocation failed"`)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
	})
}

func TestLoggerDefaults(t *testing.T) {
	assert.NotNil(t, NewLogger(nil).Logger)
	assert.NotNil(t, NewJSONLogger(slog.LevelInfo).Logger)
	assert.NotNil(t, NewTextLogger(slog.LevelWarn).Logger)

	m, err := New[string, int](WithLogger(nil))
	require.NoError(t, err)
	_, err = m.PushBack("Cero", 0)
	require.NoError(t, err)
}

func TestMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}

	m := accessFixture(t, WithMetricsCollector(mc))
	_, err := m.PushBackEntries(numerals(5)...)
	require.NoError(t, err)
	_, err = m.Insert(100, "Cien", 100)
	require.Error(t, err)

	m.FindAll("Dos")
	m.Find("Uno")
	assert.Equal(t, 4, m.EraseAll("Dos"))
	m.Erase(0)
	require.NoError(t, m.Shrink())
	require.Error(t, m.Reserve(math.MaxInt))

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.GrowCount)
	assert.Equal(t, int64(1), stats.ShrinkCount)
	assert.Equal(t, int64(1), stats.ResizeErrors)
	assert.Equal(t, int64(2), stats.InsertCount)
	assert.Equal(t, int64(5), stats.InsertItems)
	assert.Equal(t, int64(1), stats.InsertErrors)
	assert.Equal(t, int64(2), stats.EraseCount)
	assert.Equal(t, int64(5), stats.EraseItems)
	assert.Equal(t, int64(15), stats.PeakCapacity)
	assert.Positive(t, stats.LookupCount)
	assert.Positive(t, stats.LookupAvgScanned)

	t.Run("Nil", func(t *testing.T) {
		m, err := New[string, int](WithMetricsCollector(nil))
		require.NoError(t, err)
		_, err = m.PushBack("Cero", 0)
		require.NoError(t, err)
	})

	t.Run("Shared", func(t *testing.T) {
		shared := &BasicMetricsCollector{}

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				m, err := New[string, int](WithDelta(2), WithMetricsCollector(shared))
				if err != nil {
					return
				}
				for i := range 10 {
					_, _ = m.PushBack("k", i)
				}
			}()
		}
		wg.Wait()

		stats := shared.GetStats()
		assert.Equal(t, int64(80), stats.InsertItems)
		assert.Equal(t, int64(40), stats.GrowCount)
		assert.Equal(t, int64(10), stats.PeakCapacity)
	})
}
