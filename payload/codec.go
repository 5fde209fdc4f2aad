package payload

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/log"
)

// encodeOptions collects the keys an Encode call needs. Exactly one of
// asymPubKey / symKey must be set (spec §4.4 step 2).
type encodeOptions struct {
	sigPrivKey *ecdsa.PrivateKey
	asymPubKey *ecdsa.PublicKey
	symKey     []byte
}

// EncodeOption configures Encode. See WithSigningKey, WithAsymmetricPublicKey,
// WithSymmetricKey.
type EncodeOption func(*encodeOptions)

// WithSigningKey signs the clear envelope with priv before outer encryption.
func WithSigningKey(priv *ecdsa.PrivateKey) EncodeOption {
	return func(o *encodeOptions) { o.sigPrivKey = priv }
}

// WithAsymmetricPublicKey selects ECIES outer encryption under pub.
func WithAsymmetricPublicKey(pub *ecdsa.PublicKey) EncodeOption {
	return func(o *encodeOptions) { o.asymPubKey = pub }
}

// WithSymmetricKey selects AES-256-GCM outer encryption under key (32 bytes).
func WithSymmetricKey(key []byte) EncodeOption {
	return func(o *encodeOptions) { o.symKey = key }
}

// decodeOptions collects the keys a Decode call needs. Exactly one of
// asymPrivKey / symKey must be set.
type decodeOptions struct {
	asymPrivKey *ecdsa.PrivateKey
	symKey      []byte
}

// DecodeOption configures Decode. See WithAsymmetricPrivateKey, WithSymmetricDecodeKey.
type DecodeOption func(*decodeOptions)

// WithAsymmetricPrivateKey selects ECIES outer decryption under priv.
func WithAsymmetricPrivateKey(priv *ecdsa.PrivateKey) DecodeOption {
	return func(o *decodeOptions) { o.asymPrivKey = priv }
}

// WithSymmetricDecodeKey selects AES-256-GCM outer decryption under key.
func WithSymmetricDecodeKey(key []byte) DecodeOption {
	return func(o *decodeOptions) { o.symKey = key }
}

// Encode builds a signed/unsigned clear envelope from payload and wraps it
// in exactly one outer encryption layer, per spec §4.4.
func Encode(payload []byte, opts ...EncodeOption) ([]byte, *Signature, error) {
	var o encodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	haveAsym := o.asymPubKey != nil
	haveSym := len(o.symKey) > 0
	if haveAsym == haveSym {
		return nil, nil, fmt.Errorf("%w: exactly one of an asymmetric public key or symmetric key is required", ErrInvalidParameters)
	}

	inner, sig, err := ClearEncode(payload, o.sigPrivKey)
	if err != nil {
		return nil, nil, err
	}

	var outer []byte
	if haveAsym {
		outer, err = EncryptAsymmetric(inner, o.asymPubKey)
	} else {
		outer, err = EncryptSymmetric(inner, o.symKey)
	}
	if err != nil {
		return nil, nil, err
	}

	log.Trace("payload: encoded", "payloadLen", len(payload), "outerLen", len(outer), "asymmetric", haveAsym)
	return outer, sig, nil
}

// Decode reverses Encode: it removes the outer encryption layer then parses
// the clear envelope.
func Decode(data []byte, opts ...DecodeOption) ([]byte, *Signature, error) {
	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	haveAsym := o.asymPrivKey != nil
	haveSym := len(o.symKey) > 0
	if haveAsym == haveSym {
		return nil, nil, fmt.Errorf("%w: exactly one of an asymmetric private key or symmetric key is required", ErrInvalidParameters)
	}

	var inner []byte
	var err error
	if haveAsym {
		inner, err = DecryptAsymmetric(data, o.asymPrivKey)
	} else {
		inner, err = DecryptSymmetric(data, o.symKey)
	}
	if err != nil {
		return nil, nil, err
	}

	return ClearDecode(inner)
}
