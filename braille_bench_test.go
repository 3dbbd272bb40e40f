package braillify

import (
	"math/rand"
	"testing"
)

func benchData(size int) []byte {
	rng := rand.New(rand.NewSource(1))
	data := make([]byte, size)
	rng.Read(data)

	return data
}

func BenchmarkEncode(b *testing.B) {
	data := benchData(4096)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Encode(data)
	}
}

func BenchmarkDecode(b *testing.B) {
	encoded := Encode(benchData(4096))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = Decode(encoded)
	}
}

func BenchmarkBitPermute(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = BitPermute(byte(i))
	}
}
