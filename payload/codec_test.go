package payload

import (
	"bytes"
	"errors"
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// gcmTagLength is the AES-GCM authentication tag size. A symmetric Encode
// output is the padded clear envelope followed by the tag and the IV.
const gcmTagLength = 16

// S1
func TestEncodeDecodeSymmetricSmallPayload(t *testing.T) {
	key, err := GenerateSymmetricKey()
	if err != nil {
		t.Fatal(err)
	}
	out, _, err := Encode([]byte("hello"), WithSymmetricKey(key))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	envelopeLen := len(out) - gcmTagLength - ivLength
	if envelopeLen < paddingTarget {
		t.Fatalf("envelope length %d < %d", envelopeLen, paddingTarget)
	}
	if envelopeLen%paddingTarget != 0 {
		t.Fatalf("envelope length %d not a multiple of %d", envelopeLen, paddingTarget)
	}
	got, _, err := Decode(out, WithSymmetricDecodeKey(key))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, []byte("hello")) {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

// S2
func TestEncodeDecodeSymmetricLargerPayload(t *testing.T) {
	key, err := GenerateSymmetricKey()
	if err != nil {
		t.Fatal(err)
	}
	data := bytes.Repeat([]byte("A"), 300)
	out, _, err := Encode(data, WithSymmetricKey(key))
	if err != nil {
		t.Fatal(err)
	}
	envelopeLen := len(out) - gcmTagLength - ivLength
	if envelopeLen < 512 || envelopeLen%paddingTarget != 0 {
		t.Fatalf("envelope length %d invalid", envelopeLen)
	}
	got, _, err := Decode(out, WithSymmetricDecodeKey(key))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("payload mismatch")
	}
}

// S3
func TestClearEncodeSignedPublicKeyRecovery(t *testing.T) {
	priv, err := ethcrypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	envelope, _, err := ClearEncode([]byte("x"), priv)
	if err != nil {
		t.Fatal(err)
	}
	_, sig, err := ClearDecode(envelope)
	if err != nil {
		t.Fatal(err)
	}
	want := ethcrypto.FromECDSAPub(&priv.PublicKey)
	got := ethcrypto.FromECDSAPub(sig.PublicKey)
	if !bytes.Equal(want, got) {
		t.Fatalf("recovered public key mismatch")
	}
}

// S4
func TestDecodeDetectsTamperedOutput(t *testing.T) {
	key, err := GenerateSymmetricKey()
	if err != nil {
		t.Fatal(err)
	}
	out, _, err := Encode([]byte("hello"), WithSymmetricKey(key))
	if err != nil {
		t.Fatal(err)
	}
	out[len(out)-1] ^= 0xFF
	if _, _, err := Decode(out, WithSymmetricDecodeKey(key)); !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("err = %v, want ErrDecryptionFailed", err)
	}
}

// S5
func TestClearEncodeEmptyPayload(t *testing.T) {
	envelope, sig, err := ClearEncode(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sig != nil {
		t.Fatalf("expected no signature")
	}
	if len(envelope) != paddingTarget {
		t.Fatalf("envelope length = %d, want %d", len(envelope), paddingTarget)
	}
	if envelope[0]&sizeFieldMask != 1 {
		t.Fatalf("size-field bits = %d, want 1", envelope[0]&sizeFieldMask)
	}
}

// S6
func TestEncodeRejectsBothKeys(t *testing.T) {
	symKey, _ := GenerateSymmetricKey()
	priv, _ := ethcrypto.GenerateKey()
	_, _, err := Encode([]byte("hello"), WithSymmetricKey(symKey), WithAsymmetricPublicKey(&priv.PublicKey))
	if !errors.Is(err, ErrInvalidParameters) {
		t.Fatalf("err = %v, want ErrInvalidParameters", err)
	}
}

func TestEncodeRejectsNoKeys(t *testing.T) {
	_, _, err := Encode([]byte("hello"))
	if !errors.Is(err, ErrInvalidParameters) {
		t.Fatalf("err = %v, want ErrInvalidParameters", err)
	}
}

func TestEncodeDecodeAsymmetricWithSignature(t *testing.T) {
	recipient, err := ethcrypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	signer, err := ethcrypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	out, sig, err := Encode([]byte("secret"), WithAsymmetricPublicKey(&recipient.PublicKey), WithSigningKey(signer))
	if err != nil {
		t.Fatal(err)
	}
	if sig == nil || sig.PublicKey == nil {
		t.Fatalf("expected a signature with a public key")
	}
	got, gotSig, err := Decode(out, WithAsymmetricPrivateKey(recipient))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("secret")) {
		t.Fatalf("payload mismatch")
	}
	if gotSig == nil || gotSig.PublicKey == nil {
		t.Fatalf("expected recovered public key on decode")
	}
	want := ethcrypto.FromECDSAPub(&signer.PublicKey)
	gotB := ethcrypto.FromECDSAPub(gotSig.PublicKey)
	if !bytes.Equal(want, gotB) {
		t.Fatalf("recovered public key mismatch")
	}
}
