package falcon

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// PublicKey is an unpacked public key: the ring element h and the log2 of
// its dimension.
type PublicKey struct {
	LogN int
	H    Polynomial
}

// Signature is an unpacked signature: the hashing salt and the centered
// small polynomial s2.
type Signature struct {
	LogN  int
	Nonce [NonceLen]byte
	S2    []int16
}

// Poly lifts the centered s2 coefficients into [0, q).
func (sig *Signature) Poly() Polynomial {
	c := make([]int64, len(sig.S2))
	for i, v := range sig.S2 {
		c[i] = int64(v)
	}
	return FromCentered(c)
}

type publicKeyFile struct {
	Version string `json:"version"`
	N       int    `json:"N"`
	Key     string `json:"key_hex"`
}

type signatureFile struct {
	Version   string `json:"version"`
	N         int    `json:"N"`
	Message   string `json:"message_hex"`
	Signature string `json:"signature_hex"`
}

const keyFileVersion = "falcon-fixture-v1"

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// SaveTestVector persists the encoded key, signature and message as JSON
// documents under dir.
func SaveTestVector(dir string, pk *PublicKey, sig *Signature, msg []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	pkBytes, err := pk.Encode()
	if err != nil {
		return err
	}
	sigBytes, err := sig.Encode()
	if err != nil {
		return err
	}
	n := 1 << pk.LogN
	pkDoc := publicKeyFile{Version: keyFileVersion, N: n, Key: hex.EncodeToString(pkBytes)}
	if err := writeJSON(filepath.Join(dir, "public.json"), pkDoc); err != nil {
		return err
	}
	sigDoc := signatureFile{
		Version:   keyFileVersion,
		N:         n,
		Message:   hex.EncodeToString(msg),
		Signature: hex.EncodeToString(sigBytes),
	}
	return writeJSON(filepath.Join(dir, "signature.json"), sigDoc)
}

// LoadTestVector reads back what SaveTestVector wrote.
func LoadTestVector(dir string) (*PublicKey, *Signature, []byte, error) {
	pkData, err := os.ReadFile(filepath.Join(dir, "public.json"))
	if err != nil {
		return nil, nil, nil, err
	}
	var pkDoc publicKeyFile
	if err := json.Unmarshal(pkData, &pkDoc); err != nil {
		return nil, nil, nil, err
	}
	if pkDoc.Version != keyFileVersion {
		return nil, nil, nil, fmt.Errorf("falcon: unsupported key file version %q", pkDoc.Version)
	}
	pkBytes, err := hex.DecodeString(pkDoc.Key)
	if err != nil {
		return nil, nil, nil, err
	}
	pk, err := DecodePublicKey(pkBytes)
	if err != nil {
		return nil, nil, nil, err
	}
	sigData, err := os.ReadFile(filepath.Join(dir, "signature.json"))
	if err != nil {
		return nil, nil, nil, err
	}
	var sigDoc signatureFile
	if err := json.Unmarshal(sigData, &sigDoc); err != nil {
		return nil, nil, nil, err
	}
	if sigDoc.Version != keyFileVersion {
		return nil, nil, nil, fmt.Errorf("falcon: unsupported signature file version %q", sigDoc.Version)
	}
	sigBytes, err := hex.DecodeString(sigDoc.Signature)
	if err != nil {
		return nil, nil, nil, err
	}
	sig, err := DecodeSignature(sigBytes)
	if err != nil {
		return nil, nil, nil, err
	}
	msg, err := hex.DecodeString(sigDoc.Message)
	if err != nil {
		return nil, nil, nil, err
	}
	return pk, sig, msg, nil
}
