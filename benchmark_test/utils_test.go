package benchmark_test

import (
	"testing"

	"github.com/hupe1980/vectormap"
	"github.com/hupe1980/vectormap/testutil"
)

var sizes = []int{100, 1_000, 10_000}

// filled returns a map of n entries whose keys are drawn from distinct values
// with a Zipf skew, so some keys repeat heavily.
func filled(b *testing.B, n, distinct int, opts ...vectormap.Option) (*vectormap.VectorMap[string, int], []string) {
	b.Helper()

	keys := testutil.NewRNG(42).Keys(n, distinct)
	entries := make([]vectormap.Entry[string, int], n)
	for i, k := range keys {
		entries[i] = vectormap.MakeEntry(k, i)
	}

	m, err := vectormap.FromEntries(entries, opts...)
	if err != nil {
		b.Fatal(err)
	}
	return m, keys
}
