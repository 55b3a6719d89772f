package compress

import (
	"fmt"
	"testing"
)

// generateBenchmarkData creates test data for benchmarks
func generateBenchmarkData(size int, compressibility string) []byte {
	data := make([]byte, size)

	switch compressibility {
	case "highly_compressible":
		// all zeros
	case "compressible":
		pattern := []byte("the quick brown fox jumps over the lazy dog, 0123456789")
		for i := range data {
			data[i] = pattern[i%len(pattern)]
		}
	case "semi_compressible":
		for i := range data {
			if i%100 < 50 {
				data[i] = byte(i % 256)
			} else {
				data[i] = byte((i*7 + i*i) % 256)
			}
		}
	default:
		for i := range data {
			data[i] = byte((i*31 + i*i*7 + i*i*i*3) % 256)
		}
	}

	return data
}

var benchSizes = []int{1024, 16384, 65536}

var benchKinds = []string{"highly_compressible", "compressible", "semi_compressible", "incompressible"}

func BenchmarkCodecs_Compress(b *testing.B) {
	for name, codec := range getAllCodecs() {
		for _, kind := range benchKinds {
			for _, size := range benchSizes {
				data := generateBenchmarkData(size, kind)
				b.Run(fmt.Sprintf("%s/%s/%dKB", name, kind, size/1024), func(b *testing.B) {
					b.SetBytes(int64(size))
					b.ReportAllocs()
					for b.Loop() {
						if _, err := codec.Compress(data); err != nil {
							b.Fatal(err)
						}
					}
				})
			}
		}
	}
}

func BenchmarkCodecs_Decompress(b *testing.B) {
	for name, codec := range getAllCodecs() {
		for _, kind := range benchKinds {
			for _, size := range benchSizes {
				data := generateBenchmarkData(size, kind)
				compressed, err := codec.Compress(data)
				if err != nil {
					b.Fatal(err)
				}

				b.Run(fmt.Sprintf("%s/%s/%dKB", name, kind, size/1024), func(b *testing.B) {
					b.SetBytes(int64(size))
					b.ReportAllocs()
					for b.Loop() {
						if _, err := codec.Decompress(compressed); err != nil {
							b.Fatal(err)
						}
					}
				})
			}
		}
	}
}
