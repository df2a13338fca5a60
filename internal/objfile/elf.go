// Completion: 100% - ELF object generation complete
package objfile

// elf.go - ELF relocatable object encoder
//
// Emits an ET_REL object with six sections in fixed order: the null
// section, .data (the aligned blob), .rodata (the size constant alone),
// .shstrtab, .symtab and .strtab. The section header table follows the
// section contents; e_shoff is patched once its position is known.

const (
	// ELF structure sizes
	elfHeaderSize64 = 64
	elfHeaderSize32 = 52
	elfShentSize64  = 64
	elfShentSize32  = 40
	elfSymSize64    = 24
	elfSymSize32    = 16

	// Fixed section/symbol counts for this layout
	elfSectionCount = 6
	elfSymbolCount  = 6
	elfShstrndx     = 3 // .shstrtab index

	// e_type
	elfTypeRel = 1 // ET_REL

	// sh_type
	shtProgbits = 1
	shtSymtab   = 2
	shtStrtab   = 3

	// sh_flags
	shfWrite = 1
	shfAlloc = 2

	// st_info: STB_GLOBAL<<4 | STT_OBJECT, and STT_SECTION
	elfSymGlobalObject = 0x11
	elfSymSection      = 0x03
)

// Section name offsets inside the fixed .shstrtab contents
const (
	shstrtabContents = "\x00.data\x00.rodata\x00.shstrtab\x00.symtab\x00.strtab\x00"
	nameOffData      = 1
	nameOffRodata    = 7
	nameOffShstrtab  = 15
	nameOffSymtab    = 25
	nameOffStrtab    = 33
)

// elfShdr is one entry of the section header table, written after all
// section contents so every offset is final.
type elfShdr struct {
	name      uint32
	shType    uint32
	flags     uint64
	offset    uint64
	size      uint64
	link      uint32
	info      uint32
	addralign uint64
	entsize   uint64
}

func encodeELF(t *target, data []byte, symbolName string, alignment uint32) []byte {
	aligned := alignData(data, alignment)
	sizeBytes := sizeConstant(len(data), t.is64)

	headerSize := elfHeaderSize32
	shentSize := elfShentSize32
	symSize := elfSymSize32
	if t.is64 {
		headerSize = elfHeaderSize64
		shentSize = elfShentSize64
		symSize = elfSymSize64
	}

	b := NewBuffer(headerSize + len(aligned) + len(sizeBytes) + 512)

	// ELF header
	b.WriteBytes([]byte{0x7f, 'E', 'L', 'F'})
	if t.is64 {
		b.WriteU8(2) // ELFCLASS64
	} else {
		b.WriteU8(1) // ELFCLASS32
	}
	b.WriteU8(1) // little endian
	b.WriteU8(1) // EV_CURRENT
	b.WriteU8(0) // System V ABI
	b.WriteZeros(8)
	b.WriteU16(elfTypeRel)
	b.WriteU16(t.elfMachine)
	b.WriteU32(1)               // e_version
	b.WriteWord(0, t.is64)      // e_entry
	b.WriteWord(0, t.is64)      // e_phoff
	shoffPos := b.ReserveWord(t.is64)
	b.WriteU32(0) // e_flags
	b.WriteU16(uint16(headerSize))
	b.WriteU16(0) // e_phentsize
	b.WriteU16(0) // e_phnum
	b.WriteU16(uint16(shentSize))
	b.WriteU16(elfSectionCount)
	b.WriteU16(elfShstrndx)

	// Symbol name string table: null byte, then the three export names
	names := deriveSymbolNames(symbolName, false)
	strtab := NewBuffer(len(names.Data) + len(names.End) + len(names.Size) + 4)
	strtab.WriteU8(0)
	dataNameOff := strtab.Len()
	strtab.WriteBytes([]byte(names.Data))
	strtab.WriteU8(0)
	endNameOff := strtab.Len()
	strtab.WriteBytes([]byte(names.End))
	strtab.WriteU8(0)
	sizeNameOff := strtab.Len()
	strtab.WriteBytes([]byte(names.Size))
	strtab.WriteU8(0)

	// Symbol table: null, two section symbols, three global objects.
	// The end symbol sits at the aligned length (one past the last data
	// byte); the size symbol lives in .rodata at offset 0.
	alignedLen := uint64(len(aligned))
	sym := NewBuffer(elfSymbolCount * symSize)
	type elfSym struct {
		name  uint32
		info  uint8
		shndx uint16
		value uint64
		size  uint64
	}
	syms := []elfSym{
		{},
		{info: elfSymSection, shndx: 1},
		{info: elfSymSection, shndx: 2},
		{name: uint32(dataNameOff), info: elfSymGlobalObject, shndx: 1, value: 0, size: alignedLen},
		{name: uint32(endNameOff), info: elfSymGlobalObject, shndx: 1, value: alignedLen, size: 0},
		{name: uint32(sizeNameOff), info: elfSymGlobalObject, shndx: 2, value: 0, size: uint64(len(sizeBytes))},
	}
	for _, s := range syms {
		if t.is64 {
			sym.WriteU32(s.name)
			sym.WriteU8(s.info)
			sym.WriteU8(0) // st_other
			sym.WriteU16(s.shndx)
			sym.WriteU64(s.value)
			sym.WriteU64(s.size)
		} else {
			sym.WriteU32(s.name)
			sym.WriteU32(uint32(s.value))
			sym.WriteU32(uint32(s.size))
			sym.WriteU8(s.info)
			sym.WriteU8(0)
			sym.WriteU16(s.shndx)
		}
	}

	// Section contents in table order, recording each start offset
	sections := [][]byte{
		nil, // null section
		aligned,
		sizeBytes,
		[]byte(shstrtabContents),
		sym.Bytes(),
		strtab.Bytes(),
	}
	offsets := make([]uint64, len(sections))
	for i, s := range sections {
		offsets[i] = uint64(b.Len())
		b.WriteBytes(s)
	}

	// Section header table position is now known
	b.PatchWord(shoffPos, uint64(b.Len()), t.is64)

	rodataAlign := uint64(4)
	symtabAlign := uint64(4)
	if t.is64 {
		rodataAlign = 8
		symtabAlign = 8
	}
	shdrs := []elfShdr{
		{},
		{name: nameOffData, shType: shtProgbits, flags: shfWrite | shfAlloc,
			offset: offsets[1], size: uint64(len(sections[1])), addralign: uint64(alignment)},
		{name: nameOffRodata, shType: shtProgbits, flags: shfAlloc,
			offset: offsets[2], size: uint64(len(sections[2])), addralign: rodataAlign},
		{name: nameOffShstrtab, shType: shtStrtab,
			offset: offsets[3], size: uint64(len(sections[3])), addralign: 1},
		{name: nameOffSymtab, shType: shtSymtab,
			offset: offsets[4], size: uint64(len(sections[4])),
			link: 5, info: 3, addralign: symtabAlign, entsize: uint64(symSize)},
		{name: nameOffStrtab, shType: shtStrtab,
			offset: offsets[5], size: uint64(len(sections[5])), addralign: 1},
	}
	for _, h := range shdrs {
		b.WriteU32(h.name)
		b.WriteU32(h.shType)
		b.WriteWord(h.flags, t.is64)
		b.WriteWord(0, t.is64) // sh_addr
		b.WriteWord(h.offset, t.is64)
		b.WriteWord(h.size, t.is64)
		b.WriteU32(h.link)
		b.WriteU32(h.info)
		b.WriteWord(h.addralign, t.is64)
		b.WriteWord(h.entsize, t.is64)
	}

	return b.Bytes()
}
