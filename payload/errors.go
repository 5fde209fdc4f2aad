package payload

import "errors"

// Error taxonomy for the codec. Every decryption and framing failure is
// surfaced through one of these sentinels (wrapped with extra context via
// %w) rather than swallowed; the codec never retries.
var (
	// ErrInvalidParameters is returned when the caller's option set is
	// self-contradictory: neither or both of an asymmetric/symmetric key
	// supplied, or a key of the wrong length.
	ErrInvalidParameters = errors.New("payload: invalid parameters")

	// ErrPaddingGenerationFailed is returned when the random source
	// produced padding of the wrong length, or produced an all-zero
	// padding run longer than 3 bytes.
	ErrPaddingGenerationFailed = errors.New("payload: padding generation failed")

	// ErrMalformedEnvelope is returned when the clear envelope cannot be
	// parsed: a zero-length size field, a declared payload length that
	// overruns the envelope, or an envelope whose total length is not a
	// multiple of 256.
	ErrMalformedEnvelope = errors.New("payload: malformed envelope")

	// ErrDecryptionFailed is returned on AES-GCM tag mismatch, ECIES MAC
	// mismatch, or an inability to derive the ECIES shared secret.
	ErrDecryptionFailed = errors.New("payload: decryption failed")

	// ErrSignatureRecoveryFailed identifies a failed public-key recovery.
	// Per the codec's contract this is non-fatal: ClearDecode does not
	// return it to the caller, it simply leaves Signature.PublicKey nil.
	// It is exported so callers who want to treat a missing recovered key
	// as an error can compare against it explicitly.
	ErrSignatureRecoveryFailed = errors.New("payload: signature recovery failed")
)
