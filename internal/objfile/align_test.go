package objfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"testing"
)

// TestAlignmentLaw verifies the padding invariants for every supported
// alignment: the result is a multiple of the alignment, padding stays
// below the alignment, and the original bytes are an exact prefix.
func TestAlignmentLaw(t *testing.T) {
	alignments := []uint32{1, 2, 4, 8, 16, 32, 64}
	lengths := []int{0, 1, 7, 31, 32, 33, 63, 64, 100}

	for _, a := range alignments {
		for _, n := range lengths {
			t.Run(fmt.Sprintf("align%d_len%d", a, n), func(t *testing.T) {
				blob := bytes.Repeat([]byte{0xAB}, n)
				padded := alignData(blob, a)

				if len(padded)%int(a) != 0 {
					t.Errorf("len(padded) = %d, not a multiple of %d", len(padded), a)
				}
				pad := len(padded) - n
				if pad < 0 || pad >= int(a) {
					t.Errorf("padding = %d, want 0 <= padding < %d", pad, a)
				}
				if !bytes.Equal(padded[:n], blob) {
					t.Error("padded data does not start with the original bytes")
				}
				for _, b := range padded[n:] {
					if b != 0 {
						t.Error("padding bytes are not zero")
						break
					}
				}
			})
		}
	}
}

// TestAlignDataAlreadyAligned checks that aligned input passes through unchanged
func TestAlignDataAlreadyAligned(t *testing.T) {
	blob := make([]byte, 64)
	padded := alignData(blob, 16)
	if len(padded) != 64 {
		t.Errorf("already-aligned input grew to %d bytes", len(padded))
	}
}

func TestSizeConstant(t *testing.T) {
	c := sizeConstant(33, true)
	if len(c) != 8 {
		t.Fatalf("64-bit size constant is %d bytes, want 8", len(c))
	}
	if binary.LittleEndian.Uint64(c) != 33 {
		t.Errorf("64-bit size constant = %d, want 33", binary.LittleEndian.Uint64(c))
	}

	c = sizeConstant(33, false)
	if len(c) != 4 {
		t.Fatalf("32-bit size constant is %d bytes, want 4", len(c))
	}
	if binary.LittleEndian.Uint32(c) != 33 {
		t.Errorf("32-bit size constant = %d, want 33", binary.LittleEndian.Uint32(c))
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, v := range []uint32{1, 2, 4, 8, 16, 32, 64, 128, 1024} {
		if !isPowerOfTwo(v) {
			t.Errorf("isPowerOfTwo(%d) = false, want true", v)
		}
	}
	for _, v := range []uint32{0, 3, 5, 6, 7, 12, 100} {
		if isPowerOfTwo(v) {
			t.Errorf("isPowerOfTwo(%d) = true, want false", v)
		}
	}
}

func TestLog2(t *testing.T) {
	tests := []struct {
		in, out uint32
	}{
		{1, 0}, {2, 1}, {4, 2}, {8, 3}, {16, 4}, {32, 5}, {64, 6},
	}
	for _, tt := range tests {
		if got := log2(tt.in); got != tt.out {
			t.Errorf("log2(%d) = %d, want %d", tt.in, got, tt.out)
		}
	}
}
