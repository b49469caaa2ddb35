package bench

import (
	"testing"

	"zk-falcon/falcon"
)

func BenchmarkMulSchoolbook(b *testing.B) {
	x := uniformPolyForBench(b, 512, 5)
	y := uniformPolyForBench(b, 512, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.MulSchoolbook(y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMulNTT(b *testing.B) {
	x := uniformPolyForBench(b, 512, 5)
	y := uniformPolyForBench(b, 512, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Mul(y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMulRing(b *testing.B) {
	r, err := falcon.BuildRing(512)
	if err != nil {
		b.Fatal(err)
	}
	x := uniformPolyForBench(b, 512, 5)
	y := uniformPolyForBench(b, 512, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := falcon.MulRing(r, x, y); err != nil {
			b.Fatal(err)
		}
	}
}
