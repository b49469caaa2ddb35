package falcon

import (
	"bytes"
	"testing"
)

func TestHashToPoint(t *testing.T) {
	par, err := NewParams(512)
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	nonce := bytes.Repeat([]byte{0xA5}, NonceLen)
	h1, err := HashToPoint([]byte("testing message"), nonce, par)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := HashToPoint([]byte("testing message"), nonce, par)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !h1.Equal(h2) {
		t.Fatal("hash is not deterministic")
	}
	for i, c := range h1 {
		if c >= Q {
			t.Fatalf("coefficient %d = %d out of range", i, c)
		}
	}
	h3, err := HashToPoint([]byte("testing message!"), nonce, par)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1.Equal(h3) {
		t.Fatal("different messages hashed to the same point")
	}
	nonce2 := bytes.Repeat([]byte{0x5A}, NonceLen)
	h4, err := HashToPoint([]byte("testing message"), nonce2, par)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1.Equal(h4) {
		t.Fatal("different nonces hashed to the same point")
	}
}

func TestAcceptSampleBoundary(t *testing.T) {
	cases := []struct {
		u    uint64
		want uint64
		ok   bool
	}{
		{0, 0, true},
		{Q - 1, Q - 1, true},
		{Q, 0, true},
		{Q + 1, 1, true},
		{4 * Q, 0, true},
		{61443, 61443 - 4*Q, true},
		{61444, 61444 - 4*Q, true},
		{61445, 0, false},
		{61446, 0, false},
		{65535, 0, false},
	}
	for _, tc := range cases {
		got, ok := acceptSample(tc.u)
		if ok != tc.ok {
			t.Fatalf("acceptSample(%d) accepted=%v, want %v", tc.u, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("acceptSample(%d) = %d, want %d", tc.u, got, tc.want)
		}
	}
}

func TestHashToPointBadNonce(t *testing.T) {
	par, _ := NewParams(512)
	if _, err := HashToPoint([]byte("m"), make([]byte, NonceLen-1), par); err == nil {
		t.Fatal("expected error for short nonce")
	}
	if _, err := HashToPoint([]byte("m"), make([]byte, NonceLen+1), par); err == nil {
		t.Fatal("expected error for long nonce")
	}
}
