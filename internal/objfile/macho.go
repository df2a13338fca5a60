// Completion: 100% - Mach-O object generation complete
package objfile

// macho.go - Mach-O object encoder
//
// Emits an MH_OBJECT file with two load commands: one __TEXT segment
// containing a single __const section that spans the aligned blob plus
// the size constant, and an LC_SYMTAB describing the three exported,
// section-relative symbols. Mach-O has no inline short-name form; every
// name lives in the string table, underscore-decorated as the platform
// requires.

// Mach-O constants
const (
	MH_MAGIC    = 0xfeedface // 32-bit magic number
	MH_MAGIC_64 = 0xfeedfacf // 64-bit magic number

	// File types
	MH_OBJECT = 0x1 // Relocatable object file

	// Flags
	MH_SUBSECTIONS_VIA_SYMBOLS = 0x2000

	// Load commands
	LC_SEGMENT    = 0x1
	LC_SEGMENT_64 = 0x19
	LC_SYMTAB     = 0x2

	// Protection flags
	VM_PROT_READ    = 0x01
	VM_PROT_WRITE   = 0x02
	VM_PROT_EXECUTE = 0x04

	// Section types
	S_REGULAR = 0x0

	// Symbol type flags
	N_EXT  = 0x01
	N_SECT = 0x0e

	// Structure sizes
	machHeaderSize64  = 32
	machHeaderSize32  = 28
	segmentCmdSize64  = 72
	segmentCmdSize32  = 56
	sectionSize64     = 80
	sectionSize32     = 68
	symtabCmdSize     = 24
	nlistSize64       = 16
	nlistSize32       = 12
	machoSymbolCount  = 3
	machoLoadCmdCount = 2
)

func encodeMachO(t *target, data []byte, symbolName string, alignment uint32) []byte {
	aligned := alignData(data, alignment)
	sizeBytes := sizeConstant(len(data), t.is64)
	combinedLen := uint64(len(aligned) + len(sizeBytes))
	alignedLen := uint64(len(aligned))

	headerSize := machHeaderSize32
	segmentCmdSize := segmentCmdSize32
	sectionSize := sectionSize32
	magic := uint32(MH_MAGIC)
	if t.is64 {
		headerSize = machHeaderSize64
		segmentCmdSize = segmentCmdSize64
		sectionSize = sectionSize64
		magic = MH_MAGIC_64
	}
	sizeOfCmds := uint32(segmentCmdSize + sectionSize + symtabCmdSize)

	b := NewBuffer(headerSize + int(sizeOfCmds) + int(combinedLen) + 256)

	// Mach-O header
	b.WriteU32(magic)
	b.WriteU32(t.machoCPU)
	b.WriteU32(t.machoSubCPU)
	b.WriteU32(MH_OBJECT)
	b.WriteU32(machoLoadCmdCount)
	b.WriteU32(sizeOfCmds)
	b.WriteU32(MH_SUBSECTIONS_VIA_SYMBOLS)
	if t.is64 {
		b.WriteU32(0) // reserved
	}

	// Segment command: one __TEXT segment holding one __const section
	if t.is64 {
		b.WriteU32(LC_SEGMENT_64)
	} else {
		b.WriteU32(LC_SEGMENT)
	}
	b.WriteU32(uint32(segmentCmdSize + sectionSize))
	b.WriteFixedString("__TEXT", 16)
	b.WriteWord(0, t.is64)           // vmaddr
	b.WriteWord(combinedLen, t.is64) // vmsize
	fileoffPos := b.ReserveWord(t.is64)
	b.WriteWord(combinedLen, t.is64) // filesize
	b.WriteU32(VM_PROT_READ | VM_PROT_WRITE | VM_PROT_EXECUTE)
	b.WriteU32(VM_PROT_READ | VM_PROT_WRITE)
	b.WriteU32(1) // nsects
	b.WriteU32(0) // flags

	// The one section, embedded in the segment command
	b.WriteFixedString("__const", 16)
	b.WriteFixedString("__TEXT", 16)
	b.WriteWord(0, t.is64)           // addr
	b.WriteWord(combinedLen, t.is64) // size
	sectOffsetPos := b.ReserveU32()
	b.WriteU32(log2(alignment))
	b.WriteU32(0) // reloff
	b.WriteU32(0) // nreloc
	b.WriteU32(S_REGULAR)
	b.WriteU32(0) // reserved1
	b.WriteU32(0) // reserved2
	if t.is64 {
		b.WriteU32(0) // reserved3
	}

	// Symbol table command; offsets and sizes patched after the content
	// regions are in place
	b.WriteU32(LC_SYMTAB)
	b.WriteU32(symtabCmdSize)
	symoffPos := b.ReserveU32()
	b.WriteU32(machoSymbolCount)
	stroffPos := b.ReserveU32()
	strsizePos := b.ReserveU32()

	// Section content
	dataOffset := uint32(b.Len())
	b.PatchWord(fileoffPos, uint64(dataOffset), t.is64)
	b.PatchU32(sectOffsetPos, dataOffset)
	b.WriteBytes(aligned)
	b.WriteBytes(sizeBytes)

	// String table contents are laid out first so each nlist entry can
	// carry its final n_strx. The table itself is appended last.
	names := deriveSymbolNames(symbolName, true)
	strtab := NewBuffer(len(names.Data) + len(names.End) + len(names.Size) + 4)
	strtab.WriteU8(0) // mandatory leading null
	dataStrx := strtab.Len()
	strtab.WriteBytes([]byte(names.Data))
	strtab.WriteU8(0)
	endStrx := strtab.Len()
	strtab.WriteBytes([]byte(names.End))
	strtab.WriteU8(0)
	sizeStrx := strtab.Len()
	strtab.WriteBytes([]byte(names.Size))
	strtab.WriteU8(0)

	// Symbol table: three external section-relative symbols. The size
	// symbol aliases the end address, where the size constant begins.
	b.PatchU32(symoffPos, uint32(b.Len()))
	type machoSym struct {
		strx  int
		value uint64
	}
	syms := []machoSym{
		{dataStrx, 0},
		{endStrx, alignedLen},
		{sizeStrx, alignedLen},
	}
	for _, s := range syms {
		b.WriteU32(uint32(s.strx))
		b.WriteU8(N_SECT | N_EXT)
		b.WriteU8(1) // n_sect
		b.WriteU16(0) // n_desc
		b.WriteWord(s.value, t.is64)
	}

	b.PatchU32(stroffPos, uint32(b.Len()))
	b.PatchU32(strsizePos, uint32(strtab.Len()))
	b.WriteBytes(strtab.Bytes())

	return b.Bytes()
}
