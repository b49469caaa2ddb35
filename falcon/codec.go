package falcon

import "fmt"

// bitWriter packs values most-significant-bit first.
type bitWriter struct {
	buf   []byte
	acc   uint64
	nbits uint
}

func (w *bitWriter) write(v uint64, n uint) {
	w.acc = w.acc<<n | (v & (1<<n - 1))
	w.nbits += n
	for w.nbits >= 8 {
		w.nbits -= 8
		w.buf = append(w.buf, byte(w.acc>>w.nbits))
	}
	w.acc &= 1<<w.nbits - 1
}

// flush pads the trailing partial byte with zero bits.
func (w *bitWriter) flush() {
	if w.nbits > 0 {
		w.buf = append(w.buf, byte(w.acc<<(8-w.nbits)))
		w.acc = 0
		w.nbits = 0
	}
}

// bitReader unpacks values most-significant-bit first.
type bitReader struct {
	buf   []byte
	pos   int
	acc   uint64
	nbits uint
}

func (r *bitReader) read(n uint) (uint64, error) {
	for r.nbits < n {
		if r.pos >= len(r.buf) {
			return 0, fmt.Errorf("falcon: truncated encoding")
		}
		r.acc = r.acc<<8 | uint64(r.buf[r.pos])
		r.pos++
		r.nbits += 8
	}
	r.nbits -= n
	v := r.acc >> r.nbits
	r.acc &= 1<<r.nbits - 1
	return v, nil
}

// paddingZero reports whether every remaining bit and byte is zero.
func (r *bitReader) paddingZero() bool {
	if r.acc != 0 {
		return false
	}
	for _, b := range r.buf[r.pos:] {
		if b != 0 {
			return false
		}
	}
	return true
}

// Encode serializes the public key: one header byte 0x00+logn, then the
// coefficients of h packed 14 bits each, big-endian.
func (pk *PublicKey) Encode() ([]byte, error) {
	par, err := NewParams(1 << pk.LogN)
	if err != nil {
		return nil, err
	}
	if len(pk.H) != par.N {
		return nil, fmt.Errorf("falcon: public key has %d coefficients, want %d", len(pk.H), par.N)
	}
	w := bitWriter{buf: make([]byte, 0, par.PKLen)}
	w.buf = append(w.buf, byte(pkHeaderBase+pk.LogN))
	for _, c := range pk.H {
		if c >= Q {
			return nil, fmt.Errorf("falcon: public key coefficient %d out of range", c)
		}
		w.write(c, 14)
	}
	w.flush()
	if len(w.buf) != par.PKLen {
		return nil, fmt.Errorf("falcon: encoded public key is %d bytes, want %d", len(w.buf), par.PKLen)
	}
	return w.buf, nil
}

// DecodePublicKey parses the byte form produced by Encode.
func DecodePublicKey(b []byte) (*PublicKey, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("falcon: empty public key")
	}
	logn := int(b[0]) - pkHeaderBase
	if logn != 9 && logn != 10 {
		return nil, fmt.Errorf("falcon: bad public key header 0x%02x", b[0])
	}
	par, err := NewParams(1 << logn)
	if err != nil {
		return nil, err
	}
	if len(b) != par.PKLen {
		return nil, fmt.Errorf("falcon: public key is %d bytes, want %d", len(b), par.PKLen)
	}
	r := bitReader{buf: b[1:]}
	h := NewPolynomial(par.N)
	for i := range h {
		v, err := r.read(14)
		if err != nil {
			return nil, err
		}
		if v >= Q {
			return nil, fmt.Errorf("falcon: public key coefficient %d out of range", v)
		}
		h[i] = v
	}
	if !r.paddingZero() {
		return nil, fmt.Errorf("falcon: non-zero public key padding")
	}
	return &PublicKey{LogN: logn, H: h}, nil
}

// Encode serializes the signature: header byte 0x30+logn, the nonce, then
// the compressed coefficients (sign bit, 7 magnitude bits, unary high
// part), zero-padded to the fixed length.
func (sig *Signature) Encode() ([]byte, error) {
	par, err := NewParams(1 << sig.LogN)
	if err != nil {
		return nil, err
	}
	if len(sig.S2) != par.N {
		return nil, fmt.Errorf("falcon: signature has %d coefficients, want %d", len(sig.S2), par.N)
	}
	w := bitWriter{buf: make([]byte, 0, par.SigLen)}
	w.buf = append(w.buf, byte(sigHeaderBase+sig.LogN))
	w.buf = append(w.buf, sig.Nonce[:]...)
	for _, c := range sig.S2 {
		signBit := uint64(0)
		m := int32(c)
		if m < 0 {
			signBit = 1
			m = -m
		}
		if m >= sigCoeffBound {
			return nil, fmt.Errorf("falcon: signature coefficient %d out of range", c)
		}
		w.write(signBit, 1)
		w.write(uint64(m)&0x7f, 7)
		w.write(1, uint(m>>7)+1)
	}
	w.flush()
	if len(w.buf) > par.SigLen {
		return nil, fmt.Errorf("falcon: compressed signature is %d bytes, exceeds %d", len(w.buf), par.SigLen)
	}
	out := make([]byte, par.SigLen)
	copy(out, w.buf)
	return out, nil
}

// DecodeSignature parses the byte form produced by Encode. It rejects
// out-of-range runs, the minus-zero encoding and non-zero padding.
func DecodeSignature(b []byte) (*Signature, error) {
	if len(b) < 1+NonceLen {
		return nil, fmt.Errorf("falcon: signature too short")
	}
	logn := int(b[0]) - sigHeaderBase
	if logn != 9 && logn != 10 {
		return nil, fmt.Errorf("falcon: bad signature header 0x%02x", b[0])
	}
	par, err := NewParams(1 << logn)
	if err != nil {
		return nil, err
	}
	if len(b) != par.SigLen {
		return nil, fmt.Errorf("falcon: signature is %d bytes, want %d", len(b), par.SigLen)
	}
	sig := &Signature{LogN: logn, S2: make([]int16, par.N)}
	copy(sig.Nonce[:], b[1:1+NonceLen])
	r := bitReader{buf: b[1+NonceLen:]}
	for i := range sig.S2 {
		signBit, err := r.read(1)
		if err != nil {
			return nil, err
		}
		m, err := r.read(7)
		if err != nil {
			return nil, err
		}
		for {
			bit, err := r.read(1)
			if err != nil {
				return nil, err
			}
			if bit == 1 {
				break
			}
			m += 128
			if m >= sigCoeffBound {
				return nil, fmt.Errorf("falcon: signature coefficient run out of range")
			}
		}
		if signBit == 1 && m == 0 {
			return nil, fmt.Errorf("falcon: minus-zero signature coefficient")
		}
		if signBit == 1 {
			sig.S2[i] = -int16(m)
		} else {
			sig.S2[i] = int16(m)
		}
	}
	if !r.paddingZero() {
		return nil, fmt.Errorf("falcon: non-zero signature padding")
	}
	return sig, nil
}
