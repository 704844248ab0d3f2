package sag

import (
	"math"
	"strconv"
	"testing"
)

func BenchmarkDetectSags(b *testing.B) {
	sizes := []int{4096, 65536}
	for _, n := range sizes {
		b.Run("n_"+strconv.Itoa(n), func(b *testing.B) {
			samples := make([]float64, n)
			timeBase := make([]float64, n)

			for i := range samples {
				timeBase[i] = float64(i) / 1000

				amp := 170.0
				if i%4096 >= 2048 && i%4096 < 2560 {
					amp = 85.0
				}

				samples[i] = amp * math.Sin(2*math.Pi*60*timeBase[i])
			}

			cfg := Config{NominalVoltage: 120}

			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				_, _ = DetectSags(samples, timeBase, cfg)
			}
		})
	}
}
