// Completion: 100% - Data alignment complete
package objfile

import "encoding/binary"

// alignData zero-pads data up to the next multiple of alignment.
// Already-aligned input is returned unchanged. alignment must be a
// power of two (validated by Encode before any encoder runs).
func alignData(data []byte, alignment uint32) []byte {
	padding := (int(alignment) - len(data)%int(alignment)) % int(alignment)
	if padding == 0 {
		return data
	}
	padded := make([]byte, len(data)+padding)
	copy(padded, data)
	return padded
}

// sizeConstant renders the pre-padding blob length as a little-endian
// unsigned integer, 8 bytes on 64-bit targets and 4 bytes on 32-bit ones.
func sizeConstant(n int, is64 bool) []byte {
	if is64 {
		return binary.LittleEndian.AppendUint64(nil, uint64(n))
	}
	return binary.LittleEndian.AppendUint32(nil, uint32(n))
}

// isPowerOfTwo reports whether v is a positive power of two
func isPowerOfTwo(v uint32) bool {
	return v > 0 && v&(v-1) == 0
}

// log2 returns the exponent of a power-of-two value (4 -> 2)
func log2(v uint32) uint32 {
	var n uint32
	for v > 1 {
		v >>= 1
		n++
	}
	return n
}
