// Completion: 100% - Utility module complete
package objfile

import "encoding/binary"

// buffer.go - Little-endian append buffer with patch support
//
// Every container is built as an ordered append of byte blocks. Fields that
// point forward (section header table offset, symbol table pointer, raw data
// pointer) are written as placeholders via Reserve*, and patched once the
// offsets they refer to are known.

type Buffer struct {
	data []byte
}

// NewBuffer returns a buffer with room for n bytes preallocated
func NewBuffer(n int) *Buffer {
	return &Buffer{data: make([]byte, 0, n)}
}

// Len returns the number of bytes written so far
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the assembled buffer
func (b *Buffer) Bytes() []byte {
	return b.data
}

func (b *Buffer) WriteU8(v uint8) {
	b.data = append(b.data, v)
}

func (b *Buffer) WriteU16(v uint16) {
	b.data = binary.LittleEndian.AppendUint16(b.data, v)
}

func (b *Buffer) WriteU32(v uint32) {
	b.data = binary.LittleEndian.AppendUint32(b.data, v)
}

func (b *Buffer) WriteU64(v uint64) {
	b.data = binary.LittleEndian.AppendUint64(b.data, v)
}

// WriteWord writes v as 8 bytes when is64 is set, 4 bytes otherwise
func (b *Buffer) WriteWord(v uint64, is64 bool) {
	if is64 {
		b.WriteU64(v)
	} else {
		b.WriteU32(uint32(v))
	}
}

func (b *Buffer) WriteBytes(bs []byte) {
	b.data = append(b.data, bs...)
}

func (b *Buffer) WriteZeros(n int) {
	b.data = append(b.data, make([]byte, n)...)
}

// WriteFixedString writes s into a field of exactly n bytes, null-padded.
// Names longer than the field are truncated.
func (b *Buffer) WriteFixedString(s string, n int) {
	field := make([]byte, n)
	copy(field, s)
	b.data = append(b.data, field...)
}

// ReserveU32 writes a 4-byte placeholder and returns its offset for PatchU32
func (b *Buffer) ReserveU32() int {
	off := len(b.data)
	b.WriteU32(0)
	return off
}

// ReserveU64 writes an 8-byte placeholder and returns its offset for PatchU64
func (b *Buffer) ReserveU64() int {
	off := len(b.data)
	b.WriteU64(0)
	return off
}

// ReserveWord reserves 8 or 4 bytes depending on is64
func (b *Buffer) ReserveWord(is64 bool) int {
	if is64 {
		return b.ReserveU64()
	}
	return b.ReserveU32()
}

func (b *Buffer) PatchU32(off int, v uint32) {
	binary.LittleEndian.PutUint32(b.data[off:], v)
}

func (b *Buffer) PatchU64(off int, v uint64) {
	binary.LittleEndian.PutUint64(b.data[off:], v)
}

// PatchWord patches 8 or 4 bytes depending on is64
func (b *Buffer) PatchWord(off int, v uint64, is64 bool) {
	if is64 {
		b.PatchU64(off, v)
	} else {
		b.PatchU32(off, uint32(v))
	}
}
