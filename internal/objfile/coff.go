// Completion: 100% - COFF object generation complete
package objfile

// coff.go - COFF/PE object encoder
//
// Emits a single-section object: .rdata holds the aligned blob followed
// directly by the size constant. The symbol table has four entries (one
// static section symbol plus the three externals). Names of up to 8 bytes
// are stored inline in the symbol record; longer names go through the
// trailing string table, whose first 4 bytes record its own total length.

const (
	coffHeaderSize        = 20
	coffSectionHeaderSize = 40
	coffSymbolSize        = 18
	coffSymbolCount       = 4

	// Section characteristics
	scnCntInitData = 0x00000040
	scnMemRead     = 0x40000000

	// Storage classes
	symClassStatic   = 3
	symClassExternal = 2
)

// IMAGE_SCN_ALIGN_* flag per supported alignment; anything else falls
// back to 4-byte alignment.
var coffAlignFlags = map[uint32]uint32{
	1:  0x00100000,
	2:  0x00200000,
	4:  0x00300000,
	8:  0x00400000,
	16: 0x00500000,
	32: 0x00600000,
	64: 0x00700000,
}

const coffAlignDefault = 0x00300000 // 4-byte

// coffStringTable accumulates long symbol names. Offsets are recorded as
// names are appended, including the 4-byte length field at the front.
type coffStringTable struct {
	names []byte
}

// add appends a name and returns its byte offset within the final table
func (st *coffStringTable) add(name string) uint32 {
	off := uint32(4 + len(st.names))
	st.names = append(st.names, name...)
	st.names = append(st.names, 0)
	return off
}

// bytes renders the table: self-inclusive length, then the names
func (st *coffStringTable) bytes() []byte {
	b := NewBuffer(4 + len(st.names))
	b.WriteU32(uint32(4 + len(st.names)))
	b.WriteBytes(st.names)
	return b.Bytes()
}

// writeCOFFSymbol writes one 18-byte symbol record. Short names are
// stored inline null-padded; long ones as a zero high word plus a string
// table offset.
func writeCOFFSymbol(b *Buffer, name string, st *coffStringTable, value uint32, section uint16, class uint8) {
	if len(name) > 8 {
		b.WriteU32(0)
		b.WriteU32(st.add(name))
	} else {
		b.WriteFixedString(name, 8)
	}
	b.WriteU32(value)
	b.WriteU16(section)
	b.WriteU16(0) // type
	b.WriteU8(class)
	b.WriteU8(0) // aux symbol count
}

func encodeCOFF(t *target, data []byte, symbolName string, alignment uint32) []byte {
	aligned := alignData(data, alignment)
	sizeBytes := sizeConstant(len(data), t.is64)
	alignedLen := uint32(len(aligned))

	alignFlag, ok := coffAlignFlags[alignment]
	if !ok {
		alignFlag = coffAlignDefault
	}
	characteristics := uint32(scnCntInitData | scnMemRead | alignFlag)

	b := NewBuffer(coffHeaderSize + coffSectionHeaderSize + len(aligned) + len(sizeBytes) + 256)

	// COFF header; the symbol table pointer is patched once the raw data
	// size is known.
	b.WriteU16(t.coffMachine)
	b.WriteU16(1) // NumberOfSections
	b.WriteU32(0) // TimeDateStamp
	symtabPtrPos := b.ReserveU32()
	b.WriteU32(coffSymbolCount)
	b.WriteU16(0) // SizeOfOptionalHeader
	b.WriteU16(0) // Characteristics

	// .rdata section header
	b.WriteFixedString(".rdata", 8)
	b.WriteU32(0) // VirtualSize
	b.WriteU32(0) // VirtualAddress
	b.WriteU32(alignedLen + uint32(len(sizeBytes)))
	rawDataPtrPos := b.ReserveU32()
	b.WriteU32(0) // PointerToRelocations
	b.WriteU32(0) // PointerToLinenumbers
	b.WriteU16(0) // NumberOfRelocations
	b.WriteU16(0) // NumberOfLinenumbers
	b.WriteU32(characteristics)

	// Raw data: aligned blob, then the size constant
	b.PatchU32(rawDataPtrPos, uint32(b.Len()))
	b.WriteBytes(aligned)
	b.WriteBytes(sizeBytes)

	// Symbol table. The end symbol sits at the aligned length; the size
	// symbol at the offset where the size constant begins (same value).
	b.PatchU32(symtabPtrPos, uint32(b.Len()))
	names := deriveSymbolNames(symbolName, t.coffDecorate)
	var st coffStringTable
	writeCOFFSymbol(b, ".rdata", &st, 0, 1, symClassStatic)
	writeCOFFSymbol(b, names.Data, &st, 0, 1, symClassExternal)
	writeCOFFSymbol(b, names.End, &st, alignedLen, 1, symClassExternal)
	writeCOFFSymbol(b, names.Size, &st, alignedLen, 1, symClassExternal)

	b.WriteBytes(st.bytes())

	return b.Bytes()
}
