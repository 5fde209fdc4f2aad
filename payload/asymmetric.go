package payload

import (
	"crypto/ecdsa"
	crand "crypto/rand"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto/ecies"
)

// EncryptAsymmetric wraps data in the ECIES hybrid scheme (spec §4.2):
// ephemeral_pubkey(65) ‖ iv(16) ‖ ciphertext ‖ mac(32). The wire format is
// dictated by crypto/ecies's own encoding, which this codec depends on
// directly rather than re-implementing, since the format must match
// independently written peers byte-for-byte (spec §9).
func EncryptAsymmetric(data []byte, pub *ecdsa.PublicKey) ([]byte, error) {
	if pub == nil {
		return nil, fmt.Errorf("%w: nil asymmetric public key", ErrInvalidParameters)
	}
	eciesPub := ecies.ImportECDSAPublic(pub)
	ct, err := ecies.Encrypt(crand.Reader, eciesPub, data, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return ct, nil
}

// DecryptAsymmetric reverses EncryptAsymmetric, verifying the ECIES MAC in
// constant time (crypto/ecies does this internally) before returning the
// plaintext.
func DecryptAsymmetric(blob []byte, priv *ecdsa.PrivateKey) ([]byte, error) {
	if priv == nil {
		return nil, fmt.Errorf("%w: nil asymmetric private key", ErrInvalidParameters)
	}
	eciesPriv := ecies.ImportECDSA(priv)
	pt, err := eciesPriv.Decrypt(blob, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return pt, nil
}
