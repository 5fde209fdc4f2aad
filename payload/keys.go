package payload

import (
	"crypto/ecdsa"
	crand "crypto/rand"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// GenerateSymmetricKey returns 32 fresh random bytes suitable for
// WithSymmetricKey / WithSymmetricDecodeKey.
func GenerateSymmetricKey() ([]byte, error) {
	key := make([]byte, symKeyLength)
	if _, err := crand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// GenerateKeyPair returns a fresh secp256k1 identity usable for signing and
// for ECIES asymmetric encryption (its PublicKey field).
func GenerateKeyPair() (*ecdsa.PrivateKey, error) {
	return ethcrypto.GenerateKey()
}

// HexToSymmetricKey parses a hex-encoded (optionally 0x-prefixed) 32-byte
// symmetric key.
func HexToSymmetricKey(s string) ([]byte, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, fmt.Errorf("payload: invalid symmetric key hex: %w", err)
	}
	if len(b) != symKeyLength {
		return nil, fmt.Errorf("%w: symmetric key must be %d bytes, got %d", ErrInvalidParameters, symKeyLength, len(b))
	}
	return b, nil
}

// PrivateKeyFromHex parses a hex-encoded (optionally 0x-prefixed) 32-byte
// secp256k1 scalar.
func PrivateKeyFromHex(s string) (*ecdsa.PrivateKey, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, fmt.Errorf("payload: invalid private key hex: %w", err)
	}
	priv, err := ethcrypto.ToECDSA(b)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid private key: %w", ErrInvalidParameters, err)
	}
	return priv, nil
}

// PublicKeyFromHex parses a hex-encoded (optionally 0x-prefixed) 65-byte
// uncompressed secp256k1 public key (0x04‖X‖Y).
func PublicKeyFromHex(s string) (*ecdsa.PublicKey, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, fmt.Errorf("payload: invalid public key hex: %w", err)
	}
	pub, err := ethcrypto.UnmarshalPubkey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid public key: %w", ErrInvalidParameters, err)
	}
	return pub, nil
}
