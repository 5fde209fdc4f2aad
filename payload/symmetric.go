package payload

import (
	"crypto/aes"
	"crypto/cipher"
	crand "crypto/rand"
	"fmt"
)

// symKeyLength is the AES-256 key size in bytes.
const symKeyLength = 32

// ivLength is the AES-GCM nonce size this codec always uses (12 bytes, the
// standard GCM nonce size — see cipher.NewGCM's default).
const ivLength = 12

// EncryptSymmetric AES-256-GCM encrypts data under key and returns
// cipher‖tag‖iv (spec §4.3): note the IV trails the ciphertext+tag, which is
// the opposite of the usual "IV first" convention but is required for wire
// compatibility with existing Waku nodes. Do not "fix" this ordering.
func EncryptSymmetric(data, key []byte) ([]byte, error) {
	if len(key) != symKeyLength {
		return nil, fmt.Errorf("%w: symmetric key must be %d bytes, got %d", ErrInvalidParameters, symKeyLength, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}
	iv := make([]byte, ivLength)
	if _, err := crand.Read(iv); err != nil {
		return nil, err
	}
	cipherAndTag := gcm.Seal(nil, iv, data, nil)
	return concat(cipherAndTag, iv), nil
}

// DecryptSymmetric reverses EncryptSymmetric. A payload shorter than the IV
// is reported as ErrMalformedEnvelope rather than panicking on an
// out-of-range slice (spec §9's open question, resolved).
func DecryptSymmetric(blob, key []byte) ([]byte, error) {
	if len(key) != symKeyLength {
		return nil, fmt.Errorf("%w: symmetric key must be %d bytes, got %d", ErrInvalidParameters, symKeyLength, len(key))
	}
	if len(blob) < ivLength {
		return nil, fmt.Errorf("%w: symmetric blob shorter than IV", ErrMalformedEnvelope)
	}
	iv := blob[len(blob)-ivLength:]
	cipherAndTag := blob[:len(blob)-ivLength]

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}
	pt, err := gcm.Open(nil, iv, cipherAndTag, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return pt, nil
}
