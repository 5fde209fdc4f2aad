package payload

// Flag bit layout of the clear envelope's first byte (spec §3, §6):
// bits 0-1 hold the size-field length in bytes, bit 2 marks a trailing
// signature, bits 3-7 are reserved and must be zero.
const (
	sizeFieldMask byte = 0x03
	signatureFlag byte = 0x04
)

// paddingTarget is the block size every envelope is padded to (spec §3).
const paddingTarget = 256

// signatureLength is len(r) + len(s) + len(recovery id).
const signatureLength = 65

// maxSizeFieldLen bounds compute_size_field_len's output; payloads needing a
// fourth length byte (>= 16,777,216 bytes) are rejected up front since the
// flags byte only reserves two bits (values 0-3) for the length.
const maxSizeFieldLen = 3

// computeSizeFieldLen returns the number of little-endian bytes needed to
// hold payloadLen, per spec §4.1 step 1: 1 byte for < 256, 2 for < 65536, 3
// for < 16777216.
func computeSizeFieldLen(payloadLen int) int {
	n := 1
	for payloadLen >= pow256(n) && n < 4 {
		n++
	}
	return n
}

func pow256(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 256
	}
	return v
}

func isSigned(flags byte) bool {
	return flags&signatureFlag != 0
}

func sizeFieldLenOf(flags byte) int {
	return int(flags & sizeFieldMask)
}
