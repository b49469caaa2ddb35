package bench

import (
	"testing"

	"zk-falcon/falcon"
)

func BenchmarkEncodePublicKey(b *testing.B) {
	pk, _, _ := benchVector(b, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pk.Encode(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeSignature(b *testing.B) {
	_, sig, _ := benchVector(b, 512)
	enc, err := sig.Encode()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := falcon.DecodeSignature(enc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHashToPoint(b *testing.B) {
	par, err := falcon.NewParams(512)
	if err != nil {
		b.Fatal(err)
	}
	_, sig, msg := benchVector(b, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := falcon.HashToPoint(msg, sig.Nonce[:], par); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	pk, sig, msg := benchVector(b, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := falcon.Verify(pk, msg, sig); err != nil {
			b.Fatal(err)
		}
	}
}
