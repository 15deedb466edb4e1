package benchmark_test

import (
	"fmt"
	"testing"
)

func BenchmarkFind(b *testing.B) {
	for _, n := range sizes {
		b.Run(fmt.Sprintf("size=%d", n), func(b *testing.B) {
			m, keys := filled(b, n, 256)

			b.Run("Hit", func(b *testing.B) {
				i := 0
				for b.Loop() {
					m.Find(keys[i%len(keys)])
					i++
				}
			})

			b.Run("Miss", func(b *testing.B) {
				for b.Loop() {
					m.Find("absent")
				}
			})

			b.Run("FindAll", func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					m.FindAll(keys[0])
				}
			})
		})
	}
}

func BenchmarkEraseAll(b *testing.B) {
	for _, n := range sizes {
		b.Run(fmt.Sprintf("size=%d", n), func(b *testing.B) {
			m, keys := filled(b, n, 16)
			c, err := m.Clone()
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			for b.Loop() {
				if err := c.CopyFrom(m); err != nil {
					b.Fatal(err)
				}
				c.EraseAll(keys[0])
			}
		})
	}
}
