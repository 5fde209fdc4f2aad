package payload

import crand "crypto/rand"

// computePaddingSize returns the number of padding bytes needed so that
// rawSize + padding is a positive multiple of paddingTarget. The result is
// always in 1..paddingTarget (spec §4.1 step 7): a rawSize that is already a
// multiple of paddingTarget still gets a full block of padding, so the
// all-zero-padding integrity check below always has bytes to examine.
func computePaddingSize(rawSize int) int {
	return paddingTarget - (rawSize % paddingTarget)
}

// generateValidPadding draws n cryptographically random bytes and rejects an
// all-zero run longer than 3 bytes, which would indicate a broken RNG rather
// than a genuinely unlucky draw (spec §9's "padding integrity check").
func generateValidPadding(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := crand.Read(buf); err != nil {
		return nil, err
	}
	if n > 3 && allZero(buf) {
		return nil, ErrPaddingGenerationFailed
	}
	return buf, nil
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
