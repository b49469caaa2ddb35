package bench

import (
	"testing"

	"zk-falcon/falcon"
)

func uniformPolyForBench(b *testing.B, n int, seed byte) falcon.Polynomial {
	b.Helper()
	r, err := falcon.BuildRing(n)
	if err != nil {
		b.Fatal(err)
	}
	p, err := falcon.UniformPolynomial(r, []byte{seed})
	if err != nil {
		b.Fatal(err)
	}
	return p
}

func BenchmarkNTTForwardInverse512(b *testing.B) {
	p := uniformPolyForBench(b, 512, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tp, err := falcon.NTT(p)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := falcon.InvNTT(tp); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNTTForwardInverse1024(b *testing.B) {
	p := uniformPolyForBench(b, 1024, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tp, err := falcon.NTT(p)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := falcon.InvNTT(tp); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMulPointwise(b *testing.B) {
	x, err := falcon.NTT(uniformPolyForBench(b, 512, 3))
	if err != nil {
		b.Fatal(err)
	}
	y, err := falcon.NTT(uniformPolyForBench(b, 512, 4))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.MulPointwise(y); err != nil {
			b.Fatal(err)
		}
	}
}
