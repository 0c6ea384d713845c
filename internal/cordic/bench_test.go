package cordic

import "testing"

func benchmarkPipeline(b *testing.B, repr Representation) {
	p, err := New(repr, DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Rotate(1.0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFloat(b *testing.B)   { benchmarkPipeline(b, Float) }
func BenchmarkSignMag(b *testing.B) { benchmarkPipeline(b, SignMagnitude) }
func BenchmarkFixed(b *testing.B)   { benchmarkPipeline(b, Fixed) }

func BenchmarkNewTable(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := NewTable(MaxIterations); err != nil {
			b.Fatal(err)
		}
	}
}
