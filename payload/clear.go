package payload

import (
	"crypto/ecdsa"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
)

// Signature carries the recoverable ECDSA signature appended to a signed
// clear envelope, plus the public key recovered from it on decode. PublicKey
// is nil when recovery failed or was not attempted (encode side always
// populates it by deriving straight from the signing key).
type Signature struct {
	Bytes     [signatureLength]byte
	PublicKey *ecdsa.PublicKey
}

// ClearEncode builds the inner envelope described in spec §4.1:
// flags ‖ size-field ‖ payload ‖ padding ‖ [signature]. If sigPrivKey is
// non-nil the envelope is signed and the returned Signature carries the
// compact signature plus the signer's uncompressed public key.
func ClearEncode(data []byte, sigPrivKey *ecdsa.PrivateKey) ([]byte, *Signature, error) {
	sizeFieldLen := computeSizeFieldLen(len(data))
	if sizeFieldLen > maxSizeFieldLen {
		return nil, nil, fmt.Errorf("%w: payload too large for a 2-bit size field (%d bytes)", ErrInvalidParameters, len(data))
	}

	signed := sigPrivKey != nil

	envelope := make([]byte, 0, 1+sizeFieldLen+len(data)+signatureLength+paddingTarget)
	envelope = append(envelope, 0) // flags placeholder, patched below

	sizeField := make([]byte, sizeFieldLen)
	putUint32LE(sizeField, uint32(len(data)), sizeFieldLen)
	envelope = append(envelope, sizeField...)
	envelope[0] |= byte(sizeFieldLen) & sizeFieldMask

	envelope = append(envelope, data...)

	rawSize := len(envelope)
	if signed {
		rawSize += signatureLength
	}
	padSize := computePaddingSize(rawSize)
	padding, err := generateValidPadding(padSize)
	if err != nil {
		return nil, nil, err
	}
	envelope = append(envelope, padding...)

	var sig *Signature
	if signed {
		envelope[0] |= signatureFlag

		digest := ethcrypto.Keccak256(envelope)
		sigBytes, err := ethcrypto.Sign(digest, sigPrivKey)
		if err != nil {
			return nil, nil, fmt.Errorf("payload: signing failed: %w", err)
		}
		envelope = append(envelope, sigBytes...)

		sig = &Signature{PublicKey: &sigPrivKey.PublicKey}
		copy(sig.Bytes[:], sigBytes)
	}

	if len(envelope)%paddingTarget != 0 {
		// unreachable unless computePaddingSize's invariant is broken.
		return nil, nil, fmt.Errorf("%w: envelope length %d is not a multiple of %d", ErrMalformedEnvelope, len(envelope), paddingTarget)
	}
	log.Trace("payload: clear envelope built", "payloadLen", len(data), "sizeFieldLen", sizeFieldLen, "padding", padSize, "signed", signed, "envelopeLen", len(envelope))
	return envelope, sig, nil
}

// ClearDecode parses an envelope built by ClearEncode, returning the payload
// and, if the envelope was signed, the recovered Signature. A malformed
// flags byte or an overrunning declared length is reported as
// ErrMalformedEnvelope. A present-but-unrecoverable signature is NOT an
// error: the payload is still returned, with Signature.PublicKey nil (spec
// §7: recovery failure must not block inspection of an otherwise-valid
// message).
func ClearDecode(message []byte) ([]byte, *Signature, error) {
	if len(message) == 0 {
		return nil, nil, fmt.Errorf("%w: empty message", ErrMalformedEnvelope)
	}
	if len(message)%paddingTarget != 0 {
		return nil, nil, fmt.Errorf("%w: length %d is not a multiple of %d", ErrMalformedEnvelope, len(message), paddingTarget)
	}

	flags := message[0]
	sizeFieldLen := sizeFieldLenOf(flags)
	if sizeFieldLen == 0 {
		return nil, nil, fmt.Errorf("%w: zero-length size field", ErrMalformedEnvelope)
	}

	signed := isSigned(flags)
	end := len(message)
	var sig *Signature
	if signed {
		if end < signatureLength {
			return nil, nil, fmt.Errorf("%w: too short to hold a signature", ErrMalformedEnvelope)
		}
		end -= signatureLength
		sig = &Signature{}
		copy(sig.Bytes[:], message[end:])

		digest := ethcrypto.Keccak256(message[:end])
		pub, err := ethcrypto.SigToPub(digest, sig.Bytes[:])
		if err != nil {
			log.Debug("payload: signature recovery failed", "err", err)
		} else {
			sig.PublicKey = pub
		}
	}

	if 1+sizeFieldLen > end {
		return nil, nil, fmt.Errorf("%w: size field overruns envelope", ErrMalformedEnvelope)
	}
	payloadLen := int(uint32LE(message[1 : 1+sizeFieldLen]))

	payloadStart := 1 + sizeFieldLen
	payloadEnd := payloadStart + payloadLen
	if payloadLen < 0 || payloadEnd > end {
		return nil, nil, fmt.Errorf("%w: declared payload length %d overruns envelope", ErrMalformedEnvelope, payloadLen)
	}

	out := make([]byte, payloadLen)
	copy(out, message[payloadStart:payloadEnd])
	return out, sig, nil
}
